package services

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistroboss/models"
)

// CartService owns the merge-by-identity semantics for cart mutations.
// The store has no single-document match-or-push operation exposed through
// CartRepo, so mutations for the same user are serialized with a keyed lock
// and written back with an upsert keyed on userId.
type CartService struct {
	Carts CartRepo
	Menus MenuRepo

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCartService(carts CartRepo, menus MenuRepo) *CartService {
	return &CartService{Carts: carts, Menus: menus, locks: make(map[string]*sync.Mutex)}
}

// userLock returns the mutex for one user's cart. Entries are never
// evicted: the map holds one mutex per distinct user id seen by the
// process, so memory grows with active-user cardinality.
func (s *CartService) userLock(userID primitive.ObjectID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := userID.Hex()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// Add puts quantity units of the menu item into the user's cart. A line
// with the same menuItemId has its quantity incremented; otherwise a new
// line is appended. Returns the full updated cart.
func (s *CartService) Add(ctx context.Context, userID, menuItemID primitive.ObjectID, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	item, err := s.Menus.FindByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	cart, err := s.Carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &models.Cart{
			ID:     primitive.NewObjectID(),
			UserID: userID,
			Items:  []models.CartLine{{MenuItemID: menuItemID, Quantity: quantity}},
		}
	} else {
		merged := false
		for i := range cart.Items {
			if cart.Items[i].MenuItemID == menuItemID {
				cart.Items[i].Quantity += quantity
				merged = true
				break
			}
		}
		if !merged {
			cart.Items = append(cart.Items, models.CartLine{MenuItemID: menuItemID, Quantity: quantity})
		}
	}

	if err := s.Carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Remove drops the line with the given menuItemId. When the last line goes,
// the cart document goes with it and the returned cart is nil.
func (s *CartService) Remove(ctx context.Context, userID, menuItemID primitive.ObjectID) (*models.Cart, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	cart, err := s.Carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrNotFound
	}

	kept := cart.Items[:0]
	for _, line := range cart.Items {
		if line.MenuItemID != menuItemID {
			kept = append(kept, line)
		}
	}
	cart.Items = kept

	if len(cart.Items) == 0 {
		if err := s.Carts.DeleteByUser(ctx, userID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err := s.Carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// CartLineDetail is a cart line with its menu item resolved for display.
type CartLineDetail struct {
	MenuItem models.MenuItem `json:"menuItem"`
	Quantity int             `json:"quantity"`
}

type CartDetail struct {
	ID     primitive.ObjectID `json:"id"`
	UserID primitive.ObjectID `json:"userId"`
	Items  []CartLineDetail   `json:"items"`
}

// List returns the user's cart with each line joined against the menu
// collection. An absent or empty cart is reported as ErrCartEmpty; lines
// whose menu item has since been deleted are skipped.
func (s *CartService) List(ctx context.Context, userID primitive.ObjectID) (*CartDetail, error) {
	cart, err := s.Carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	detail := &CartDetail{ID: cart.ID, UserID: cart.UserID, Items: []CartLineDetail{}}
	for _, line := range cart.Items {
		item, err := s.Menus.FindByID(ctx, line.MenuItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			continue
		}
		detail.Items = append(detail.Items, CartLineDetail{MenuItem: *item, Quantity: line.Quantity})
	}
	return detail, nil
}

// Reset empties the user's cart. It succeeds whether or not a cart existed.
func (s *CartService) Reset(ctx context.Context, userID primitive.ObjectID) error {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()
	return s.Carts.DeleteByUser(ctx, userID)
}
