package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bistroboss/models"
)

type CartRepository struct {
	Col *mongo.Collection
}

func NewCartRepository(col *mongo.Collection) *CartRepository {
	return &CartRepository{Col: col}
}

func (r *CartRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := r.Col.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Save upserts keyed on userId, so a retry can never leave two cart
// documents for the same user.
func (r *CartRepository) Save(ctx context.Context, c *models.Cart) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"userId": c.UserID}, c, opts)
	return err
}

func (r *CartRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
