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

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(col *mongo.Collection) *UserRepository {
	return &UserRepository{Col: col}
}

func (r *UserRepository) Insert(ctx context.Context, u *models.User) error {
	_, err := r.Col.InsertOne(ctx, u)
	return err
}

func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	cursor, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"uid": uid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ExistsByUIDOrEmail(ctx context.Context, uid, email string) (bool, error) {
	filter := bson.M{"$or": bson.A{bson.M{"uid": uid}, bson.M{"email": email}}}
	count, err := r.Col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) SetRole(ctx context.Context, id primitive.ObjectID, role string) (*models.User, error) {
	update := bson.M{"$set": bson.M{"role": role, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := r.Col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) SetLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	update := bson.M{"$set": bson.M{"last_login": at, "updatedAt": time.Now()}}
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *UserRepository) CountEstimate(ctx context.Context) (int64, error) {
	return r.Col.EstimatedDocumentCount(ctx)
}
