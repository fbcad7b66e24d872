package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistroboss/models"
	"bistroboss/services"
)

type MenuController struct {
	Menus services.MenuRepo
}

func NewMenuController(menus services.MenuRepo) *MenuController {
	return &MenuController{Menus: menus}
}

// GET /menu
func (h *MenuController) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	items, err := h.Menus.All(ctx)
	if err != nil {
		failFromErr(c, err)
		return
	}
	respond(c, http.StatusOK, fmt.Sprintf("All menu %d", len(items)), gin.H{"menus": items})
}

// GET /menu/:id
func (h *MenuController) Get(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	item, err := h.Menus.FindByID(ctx, id)
	if err != nil {
		failFromErr(c, err)
		return
	}
	if item == nil {
		fail(c, http.StatusNotFound, "not_found", "Menu item not found")
		return
	}
	respond(c, http.StatusOK, "menu item found successfully", gin.H{"menu": item})
}

// POST /menu (admin)
func (h *MenuController) Create(c *gin.Context) {
	var body struct {
		Name     string  `json:"name" binding:"required"`
		Recipe   string  `json:"recipe" binding:"required"`
		Image    string  `json:"image" binding:"required"`
		Category string  `json:"category" binding:"required"`
		Price    float64 `json:"price" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "validation_error", "All fields are required")
		return
	}

	now := time.Now()
	item := &models.MenuItem{
		ID:        primitive.NewObjectID(),
		Name:      body.Name,
		Recipe:    body.Recipe,
		Image:     body.Image,
		Category:  body.Category,
		Price:     body.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.Menus.Insert(ctx, item); err != nil {
		failFromErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "menu item added successfully", gin.H{"menu": item})
}

// PATCH /editmenu/:id (admin)
func (h *MenuController) Update(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var body models.MenuUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	item, err := h.Menus.Update(ctx, id, &body)
	if err != nil {
		failFromErr(c, err)
		return
	}
	if item == nil {
		fail(c, http.StatusNotFound, "not_found", "Menu item not found, provide a valid ID")
		return
	}
	respond(c, http.StatusOK, "Menu item updated successfully", gin.H{"menu": item})
}

// DELETE /menu/:id (admin)
func (h *MenuController) Delete(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	item, err := h.Menus.FindByID(ctx, id)
	if err != nil {
		failFromErr(c, err)
		return
	}
	if item == nil {
		fail(c, http.StatusNotFound, "not_found", "Menu item not found")
		return
	}
	if err := h.Menus.Delete(ctx, id); err != nil {
		failFromErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Deleted successfully", gin.H{"menu": item})
}
