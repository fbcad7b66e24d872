package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bistroboss/config"
)

// Collections bundles the collection handles the repositories work against.
type Collections struct {
	Users    *mongo.Collection
	Menus    *mongo.Collection
	Reviews  *mongo.Collection
	Carts    *mongo.Collection
	Payments *mongo.Collection
}

// Connect dials MongoDB with the configured URI and returns the client and
// database handle.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongodb connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("mongodb ping: %w", err)
	}
	return client, client.Database(cfg.DBName), nil
}

func NewCollections(db *mongo.Database) *Collections {
	return &Collections{
		Users:    db.Collection("users"),
		Menus:    db.Collection("menus"),
		Reviews:  db.Collection("reviews"),
		Carts:    db.Collection("carts"),
		Payments: db.Collection("payments"),
	}
}

// EnsureIndexes creates the unique indexes registration relies on.
func EnsureIndexes(ctx context.Context, c *Collections) error {
	_, err := c.Users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "uid", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	_, err = c.Carts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create cart index: %w", err)
	}
	return nil
}
