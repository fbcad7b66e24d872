package services

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistroboss/models"
)

// In-memory fakes for the repository interfaces. Finders return copies so
// callers mutating results cannot corrupt the stored documents, matching
// what a driver decode gives you.

type fakeMenuRepo struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]models.MenuItem
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{items: make(map[primitive.ObjectID]models.MenuItem)}
}

func (r *fakeMenuRepo) Insert(_ context.Context, m *models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[m.ID] = *m
	return nil
}

func (r *fakeMenuRepo) All(_ context.Context) ([]models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.MenuItem{}
	for _, m := range r.items {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMenuRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *fakeMenuRepo) Update(_ context.Context, id primitive.ObjectID, in *models.MenuUpdate) (*models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Recipe != nil {
		m.Recipe = *in.Recipe
	}
	if in.Image != nil {
		m.Image = *in.Image
	}
	if in.Category != nil {
		m.Category = *in.Category
	}
	if in.Price != nil {
		m.Price = *in.Price
	}
	r.items[id] = m
	return &m, nil
}

func (r *fakeMenuRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeMenuRepo) CountEstimate(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

type fakeCartRepo struct {
	mu        sync.Mutex
	carts     map[primitive.ObjectID]models.Cart
	deleteErr error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[primitive.ObjectID]models.Cart)}
}

func (r *fakeCartRepo) FindByUser(_ context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[userID]
	if !ok {
		return nil, nil
	}
	cp := c
	cp.Items = append([]models.CartLine(nil), c.Items...)
	return &cp, nil
}

func (r *fakeCartRepo) Save(_ context.Context, c *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	cp.Items = append([]models.CartLine(nil), c.Items...)
	r.carts[c.UserID] = cp
	return nil
}

func (r *fakeCartRepo) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.carts, userID)
	return nil
}

func (r *fakeCartRepo) count(userID primitive.ObjectID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.carts[userID]; ok {
		return 1
	}
	return 0
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments []models.Payment
}

func newFakePaymentRepo() *fakePaymentRepo { return &fakePaymentRepo{} }

func (r *fakePaymentRepo) Insert(_ context.Context, p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, *p)
	return nil
}

func (r *fakePaymentRepo) All(_ context.Context) ([]models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Payment(nil), r.payments...), nil
}

func (r *fakePaymentRepo) ByUser(_ context.Context, userID primitive.ObjectID) ([]models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Payment{}
	for _, p := range r.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) CountEstimate(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.payments)), nil
}

func (r *fakePaymentRepo) TotalRevenue(_ context.Context) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total float64
	for _, p := range r.payments {
		total += p.TotalPrice
	}
	return total, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]models.User)}
}

func (r *fakeUserRepo) Insert(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) All(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.User{}
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByUID(_ context.Context, uid string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.UID == uid {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByUIDOrEmail(_ context.Context, uid, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.UID == uid || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) SetRole(_ context.Context, id primitive.ObjectID, role string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	u.Role = role
	r.users[id] = u
	return &u, nil
}

func (r *fakeUserRepo) SetLastLogin(_ context.Context, id primitive.ObjectID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if ok {
		u.LastLogin = at
		r.users[id] = u
	}
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) CountEstimate(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

type fakeIntentClient struct {
	lastAmount int64
	secret     string
	err        error
}

func (f *fakeIntentClient) CreateIntent(_ context.Context, amountMinor int64) (string, error) {
	f.lastAmount = amountMinor
	if f.err != nil {
		return "", f.err
	}
	return f.secret, nil
}
