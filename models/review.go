package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is deliberately anonymous; there is no author reference.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Details   string             `bson:"details" json:"details"`
	Rating    int                `bson:"rating" json:"rating"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ReviewUpdate is a partial update; only non-nil fields are applied.
type ReviewUpdate struct {
	Name    *string `json:"name"`
	Details *string `json:"details"`
	Rating  *int    `json:"rating"`
}
