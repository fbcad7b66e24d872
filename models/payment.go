package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Payment records one completed checkout. It is written exactly once and
// never mutated afterwards.
type Payment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID   `bson:"userId" json:"userId"`
	Email         string               `bson:"email" json:"email"`
	TotalPrice    float64              `bson:"totalPrice" json:"totalPrice"`
	TransactionID string               `bson:"transactionId" json:"transactionId"`
	MenuItemIDs   []primitive.ObjectID `bson:"menuItemIds" json:"menuItemIds"`
	Status        string               `bson:"status" json:"status"`
	Date          time.Time            `bson:"date" json:"date"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// ValidPaymentStatus reports whether s is one of the allowed status values.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}
