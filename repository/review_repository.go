package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bistroboss/models"
)

type ReviewRepository struct {
	Col *mongo.Collection
}

func NewReviewRepository(col *mongo.Collection) *ReviewRepository {
	return &ReviewRepository{Col: col}
}

func (r *ReviewRepository) Insert(ctx context.Context, rev *models.Review) error {
	_, err := r.Col.InsertOne(ctx, rev)
	return err
}

func (r *ReviewRepository) All(ctx context.Context) ([]models.Review, error) {
	cursor, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	var review models.Review
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) Update(ctx context.Context, id primitive.ObjectID, in *models.ReviewUpdate) (*models.Review, error) {
	set := bson.M{"updatedAt": time.Now()}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Details != nil {
		set["details"] = *in.Details
	}
	if in.Rating != nil {
		set["rating"] = *in.Rating
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var review models.Review
	err := r.Col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
