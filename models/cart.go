package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Cart holds the open cart for one user. At most one cart document exists
// per userId, and an empty item list is never persisted.
type Cart struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Items  []CartLine         `bson:"items" json:"items"`
}

type CartLine struct {
	MenuItemID primitive.ObjectID `bson:"menuItemId" json:"menuItemId"`
	Quantity   int                `bson:"quantity" json:"quantity"`
}
