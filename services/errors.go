package services

import "errors"

// Sentinel errors the controllers translate into HTTP statuses.
var (
	ErrNotFound        = errors.New("not found")
	ErrCartEmpty       = errors.New("cart is empty")
	ErrUserExists      = errors.New("user already exists")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidPrice    = errors.New("price must be greater than zero")
	ErrInvalidStatus   = errors.New("invalid payment status")
)
