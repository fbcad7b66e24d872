package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistroboss/services"
)

type PaymentController struct {
	Svc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: svc}
}

// POST /create-payment-intent
func (h *PaymentController) CreateIntent(c *gin.Context) {
	var body struct {
		Price float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "validation_error", "price is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	clientSecret, err := h.Svc.CreateIntent(ctx, body.Price)
	if err != nil {
		failFromErr(c, err)
		return
	}
	respond(c, http.StatusOK, "payment intent created", gin.H{"clientSecret": clientSecret})
}

// POST /payments
func (h *PaymentController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}

	var body struct {
		Email         string   `json:"email" binding:"required,email"`
		TotalPrice    float64  `json:"totalPrice" binding:"required,gt=0"`
		TransactionID string   `json:"transactionId" binding:"required"`
		MenuItemIDs   []string `json:"menuItemIds" binding:"required,min=1"`
		Status        string   `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "validation_error", "Invalid request data")
		return
	}

	menuItemIDs := make([]primitive.ObjectID, 0, len(body.MenuItemIDs))
	for _, raw := range body.MenuItemIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			fail(c, http.StatusBadRequest, "validation_error", "Invalid menuItemId format")
			return
		}
		menuItemIDs = append(menuItemIDs, id)
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	payment, err := h.Svc.Finalize(ctx, services.FinalizeIn{
		UserID:        userID,
		Email:         body.Email,
		TotalPrice:    body.TotalPrice,
		TransactionID: body.TransactionID,
		MenuItemIDs:   menuItemIDs,
		Status:        body.Status,
	})
	if err != nil {
		failFromErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Payment added successfully", gin.H{"payment": payment})
}

// GET /paymenthistory
func (h *PaymentController) History(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	payments, err := h.Svc.History(ctx, userID)
	if err != nil {
		failFromErr(c, err)
		return
	}
	respond(c, http.StatusOK, "All payment list", gin.H{"paymentList": payments})
}
