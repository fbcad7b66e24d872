package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistroboss/services"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	cart, err := h.Svc.List(ctx, userID)
	if err != nil {
		failFromErr(c, err)
		return
	}
	respond(c, http.StatusOK, "cart items", gin.H{"cart": cart})
}

// POST /cart
func (h *CartController) Add(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}

	var body struct {
		MenuItemID string `json:"menuItemId" binding:"required"`
		Quantity   int    `json:"quantity" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "validation_error", "Invalid request data")
		return
	}
	menuItemID, err := primitive.ObjectIDFromHex(body.MenuItemID)
	if err != nil {
		fail(c, http.StatusBadRequest, "validation_error", "Invalid menuItemId")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	cart, err := h.Svc.Add(ctx, userID, menuItemID, body.Quantity)
	if err != nil {
		failFromErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Item added to cart successfully", gin.H{"cart": cart})
}

// DELETE /deletecart/:id
func (h *CartController) Remove(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	menuItemID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	cart, err := h.Svc.Remove(ctx, userID, menuItemID)
	if err != nil {
		failFromErr(c, err)
		return
	}
	if cart == nil {
		respond(c, http.StatusOK, "Cart is now empty", nil)
		return
	}
	respond(c, http.StatusOK, "Item removed from cart successfully", gin.H{"cart": cart})
}

// DELETE /resetcart
func (h *CartController) Reset(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.Svc.Reset(ctx, userID); err != nil {
		failFromErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Cart has been reset successfully", nil)
}
