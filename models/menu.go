package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Recipe    string             `bson:"recipe" json:"recipe"`
	Image     string             `bson:"image" json:"image"`
	Category  string             `bson:"category" json:"category"`
	Price     float64            `bson:"price" json:"price"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MenuUpdate is a partial update; only non-nil fields are applied.
type MenuUpdate struct {
	Name     *string  `json:"name"`
	Recipe   *string  `json:"recipe"`
	Image    *string  `json:"image"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
}
