package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistroboss/models"
)

// The repository interfaces the services consume. The mongo implementations
// live in the repository package; finder methods return (nil, nil) when the
// document is absent so callers never see driver errors.

type UserRepo interface {
	Insert(ctx context.Context, u *models.User) error
	All(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByUID(ctx context.Context, uid string) (*models.User, error)
	ExistsByUIDOrEmail(ctx context.Context, uid, email string) (bool, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (*models.User, error)
	SetLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountEstimate(ctx context.Context) (int64, error)
}

type MenuRepo interface {
	Insert(ctx context.Context, m *models.MenuItem) error
	All(ctx context.Context) ([]models.MenuItem, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	Update(ctx context.Context, id primitive.ObjectID, in *models.MenuUpdate) (*models.MenuItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountEstimate(ctx context.Context) (int64, error)
}

type ReviewRepo interface {
	Insert(ctx context.Context, r *models.Review) error
	All(ctx context.Context) ([]models.Review, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	Update(ctx context.Context, id primitive.ObjectID, in *models.ReviewUpdate) (*models.Review, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CartRepo interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	// Save upserts the cart keyed by userId.
	Save(ctx context.Context, c *models.Cart) error
	// DeleteByUser removes every cart document for the user; deleting a
	// user with no cart is not an error.
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}

type PaymentRepo interface {
	Insert(ctx context.Context, p *models.Payment) error
	All(ctx context.Context) ([]models.Payment, error)
	ByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Payment, error)
	CountEstimate(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
}

// IntentClient is the payment-processor boundary: given an amount in minor
// units it returns the client-side secret for a card charge.
type IntentClient interface {
	CreateIntent(ctx context.Context, amountMinor int64) (string, error)
}
