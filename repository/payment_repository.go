package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistroboss/models"
)

type PaymentRepository struct {
	Col *mongo.Collection
}

func NewPaymentRepository(col *mongo.Collection) *PaymentRepository {
	return &PaymentRepository{Col: col}
}

func (r *PaymentRepository) Insert(ctx context.Context, p *models.Payment) error {
	_, err := r.Col.InsertOne(ctx, p)
	return err
}

func (r *PaymentRepository) All(ctx context.Context) ([]models.Payment, error) {
	cursor, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) ByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Payment, error) {
	cursor, err := r.Col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) CountEstimate(ctx context.Context) (int64, error) {
	return r.Col.EstimatedDocumentCount(ctx)
}

// TotalRevenue sums totalPrice across all payments. No payments means 0.
func (r *PaymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"totalRevenue": bson.M{"$sum": "$totalPrice"},
		}}},
	}
	cursor, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}

	var result []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, err
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].TotalRevenue, nil
}
