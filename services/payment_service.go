package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistroboss/models"
)

// PaymentService reconciles checkouts: it records the payment and retires
// the user's cart. The payment record is the source of truth, so a cart
// cleanup failure after a successful insert is logged and not surfaced.
type PaymentService struct {
	Payments PaymentRepo
	Carts    CartRepo
	Intents  IntentClient
	Log      *slog.Logger
}

func NewPaymentService(payments PaymentRepo, carts CartRepo, intents IntentClient, log *slog.Logger) *PaymentService {
	return &PaymentService{Payments: payments, Carts: carts, Intents: intents, Log: log}
}

// CreateIntent converts a decimal price to integer minor units and asks the
// processor for a client secret. No persistence happens here.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", ErrInvalidPrice
	}
	amount := int64(price * 100)
	return s.Intents.CreateIntent(ctx, amount)
}

type FinalizeIn struct {
	UserID        primitive.ObjectID
	Email         string
	TotalPrice    float64
	TransactionID string
	MenuItemIDs   []primitive.ObjectID
	Status        string
}

// Finalize writes the payment record and then deletes the user's cart.
func (s *PaymentService) Finalize(ctx context.Context, in FinalizeIn) (*models.Payment, error) {
	status := in.Status
	if status == "" {
		status = models.PaymentPending
	}
	if !models.ValidPaymentStatus(status) {
		return nil, ErrInvalidStatus
	}

	now := time.Now()
	payment := &models.Payment{
		ID:            primitive.NewObjectID(),
		UserID:        in.UserID,
		Email:         in.Email,
		TotalPrice:    in.TotalPrice,
		TransactionID: in.TransactionID,
		MenuItemIDs:   in.MenuItemIDs,
		Status:        status,
		Date:          now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Payments.Insert(ctx, payment); err != nil {
		return nil, err
	}

	if err := s.Carts.DeleteByUser(ctx, in.UserID); err != nil {
		s.Log.Warn("cart cleanup after payment failed",
			"userId", in.UserID.Hex(),
			"paymentId", payment.ID.Hex(),
			"error", err)
	}
	return payment, nil
}

// History returns the user's payments, newest first.
func (s *PaymentService) History(ctx context.Context, userID primitive.ObjectID) ([]models.Payment, error) {
	list, err := s.Payments.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}
