package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bistroboss/config"
	"bistroboss/middleware"
	"bistroboss/services"
	"bistroboss/token"
)

type AuthController struct {
	Svc *services.UserService
	Cfg *config.Config
}

func NewAuthController(svc *services.UserService, cfg *config.Config) *AuthController {
	return &AuthController{Svc: svc, Cfg: cfg}
}

// POST /register
func (h *AuthController) Register(c *gin.Context) {
	var body struct {
		UID   string `json:"uid" binding:"required"`
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "validation_error", "All fields are required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.Svc.Register(ctx, body.UID, body.Name, body.Email)
	if err != nil {
		failFromErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "User created successfully", gin.H{"user": user})
}

// POST /login
func (h *AuthController) Login(c *gin.Context) {
	var body struct {
		UID string `json:"uid" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "validation_error", "uid is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.Svc.Login(ctx, body.UID)
	if err != nil {
		failFromErr(c, err)
		return
	}

	credential, err := token.Generate(user, []byte(h.Cfg.JWTSecret), h.Cfg.JWTTTL)
	if err != nil {
		failFromErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Login successful", gin.H{"user": user, "token": credential})
}

// GET /alluser (admin)
func (h *AuthController) AllUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, err := h.Svc.All(ctx)
	if err != nil {
		failFromErr(c, err)
		return
	}
	respond(c, http.StatusOK, fmt.Sprintf("All user %d", len(users)), gin.H{"users": users})
}

// PATCH /makeadmin/:id (admin)
func (h *AuthController) MakeAdmin(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.Svc.MakeAdmin(ctx, id)
	if err != nil {
		failFromErr(c, err)
		return
	}
	respond(c, http.StatusOK, fmt.Sprintf("%s is now admin", user.Name), gin.H{"user": user})
}

// DELETE /deleteuser/:id (admin)
func (h *AuthController) DeleteUser(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.Svc.Delete(ctx, id); err != nil {
		failFromErr(c, err)
		return
	}
	respond(c, http.StatusOK, "User deleted successfully", gin.H{"id": id.Hex()})
}

// GET /userrole (authenticated)
func (h *AuthController) Role(c *gin.Context) {
	role, exists := c.Get(middleware.CtxRole)
	if !exists {
		fail(c, http.StatusUnauthorized, "unauthorized", "Access denied")
		return
	}
	respond(c, http.StatusOK, "user role", gin.H{"role": role})
}
