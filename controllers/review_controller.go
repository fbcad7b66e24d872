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

type ReviewController struct {
	Reviews services.ReviewRepo
}

func NewReviewController(reviews services.ReviewRepo) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

// GET /review
func (h *ReviewController) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	reviews, err := h.Reviews.All(ctx)
	if err != nil {
		failFromErr(c, err)
		return
	}
	respond(c, http.StatusOK, fmt.Sprintf("All reviews %d", len(reviews)), gin.H{"reviews": reviews})
}

// GET /review/:id
func (h *ReviewController) Get(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	review, err := h.Reviews.FindByID(ctx, id)
	if err != nil {
		failFromErr(c, err)
		return
	}
	if review == nil {
		fail(c, http.StatusNotFound, "not_found", "No review found")
		return
	}
	respond(c, http.StatusOK, "review found", gin.H{"review": review})
}

// POST /review
func (h *ReviewController) Create(c *gin.Context) {
	var body struct {
		Name    string `json:"name" binding:"required"`
		Details string `json:"details" binding:"required"`
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "validation_error", "All fields are required, rating must be 1-5")
		return
	}

	now := time.Now()
	review := &models.Review{
		ID:        primitive.NewObjectID(),
		Name:      body.Name,
		Details:   body.Details,
		Rating:    body.Rating,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.Reviews.Insert(ctx, review); err != nil {
		failFromErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Review created successfully", gin.H{"review": review})
}

// PATCH /editreview/:id
func (h *ReviewController) Update(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var body models.ReviewUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}
	if body.Rating != nil && (*body.Rating < 1 || *body.Rating > 5) {
		fail(c, http.StatusBadRequest, "validation_error", "rating must be 1-5")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	review, err := h.Reviews.Update(ctx, id, &body)
	if err != nil {
		failFromErr(c, err)
		return
	}
	if review == nil {
		fail(c, http.StatusNotFound, "not_found", "Review not found, provide a valid Id")
		return
	}
	respond(c, http.StatusOK, "Review updated successfully", gin.H{"review": review})
}

// DELETE /review/:id (admin)
func (h *ReviewController) Delete(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	review, err := h.Reviews.FindByID(ctx, id)
	if err != nil {
		failFromErr(c, err)
		return
	}
	if review == nil {
		fail(c, http.StatusNotFound, "not_found", "No review found")
		return
	}
	if err := h.Reviews.Delete(ctx, id); err != nil {
		failFromErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Deleted successfully", gin.H{"review": review})
}
