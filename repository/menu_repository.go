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

type MenuRepository struct {
	Col *mongo.Collection
}

func NewMenuRepository(col *mongo.Collection) *MenuRepository {
	return &MenuRepository{Col: col}
}

func (r *MenuRepository) Insert(ctx context.Context, m *models.MenuItem) error {
	_, err := r.Col.InsertOne(ctx, m)
	return err
}

func (r *MenuRepository) All(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies only the fields present in the request body and returns
// the updated document, or nil when the id does not exist.
func (r *MenuRepository) Update(ctx context.Context, id primitive.ObjectID, in *models.MenuUpdate) (*models.MenuItem, error) {
	set := bson.M{"updatedAt": time.Now()}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Recipe != nil {
		set["recipe"] = *in.Recipe
	}
	if in.Image != nil {
		set["image"] = *in.Image
	}
	if in.Category != nil {
		set["category"] = *in.Category
	}
	if in.Price != nil {
		set["price"] = *in.Price
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var item models.MenuItem
	err := r.Col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *MenuRepository) CountEstimate(ctx context.Context) (int64, error) {
	return r.Col.EstimatedDocumentCount(ctx)
}
