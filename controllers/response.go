package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistroboss/middleware"
	"bistroboss/services"
)

// Every response is an envelope with a success flag and human-readable
// message. Failures additionally carry a machine-readable code.

func respond(c *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{"success": true, "message": message}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"success": false, "code": code, "message": message})
}

// failFromErr maps service errors onto the HTTP taxonomy: 404 for an absent
// entity, 400 for invalid input, 409 for duplicates, 500 otherwise.
func failFromErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, services.ErrCartEmpty):
		fail(c, http.StatusNotFound, "cart_empty", "Your cart is empty!")
	case errors.Is(err, services.ErrUserExists):
		fail(c, http.StatusConflict, "conflict", "User already exists, please log in.")
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrInvalidStatus):
		fail(c, http.StatusBadRequest, "validation_error", err.Error())
	default:
		fail(c, http.StatusInternalServerError, "internal_error", "Something went wrong: "+err.Error())
	}
}

func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		fail(c, http.StatusBadRequest, "validation_error", "Invalid id")
		return primitive.NilObjectID, false
	}
	return id, true
}

func userIDFromCtx(c *gin.Context) (primitive.ObjectID, bool) {
	v, ok := c.Get(middleware.CtxUserID)
	if !ok {
		fail(c, http.StatusUnauthorized, "unauthorized", "Access denied")
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	if !ok {
		fail(c, http.StatusUnauthorized, "unauthorized", "Access denied")
		return primitive.NilObjectID, false
	}
	return id, true
}
