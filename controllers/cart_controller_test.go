package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistroboss/middleware"
	"bistroboss/models"
	"bistroboss/services"
)

type menuRepoStub struct {
	items map[primitive.ObjectID]models.MenuItem
}

func (r *menuRepoStub) FindByID(_ context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}
func (r *menuRepoStub) Insert(_ context.Context, m *models.MenuItem) error {
	r.items[m.ID] = *m
	return nil
}
func (r *menuRepoStub) All(context.Context) ([]models.MenuItem, error) { return nil, nil }
func (r *menuRepoStub) Delete(context.Context, primitive.ObjectID) error {
	return nil
}
func (r *menuRepoStub) CountEstimate(context.Context) (int64, error) { return 0, nil }
func (r *menuRepoStub) Update(context.Context, primitive.ObjectID, *models.MenuUpdate) (*models.MenuItem, error) {
	return nil, nil
}

type cartRepoStub struct {
	carts map[primitive.ObjectID]models.Cart
}

func (r *cartRepoStub) FindByUser(_ context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	c, ok := r.carts[userID]
	if !ok {
		return nil, nil
	}
	cp := c
	cp.Items = append([]models.CartLine(nil), c.Items...)
	return &cp, nil
}
func (r *cartRepoStub) Save(_ context.Context, c *models.Cart) error {
	cp := *c
	cp.Items = append([]models.CartLine(nil), c.Items...)
	r.carts[c.UserID] = cp
	return nil
}
func (r *cartRepoStub) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	delete(r.carts, userID)
	return nil
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func newCartRouter(userID primitive.ObjectID, menus services.MenuRepo, carts services.CartRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewCartController(services.NewCartService(carts, menus))

	setUser := func(c *gin.Context) {
		c.Set(middleware.CtxUserID, userID)
		c.Next()
	}

	r := gin.New()
	api := r.Group("/api")
	api.GET("/cart", setUser, ctrl.Get)
	api.POST("/cart", setUser, ctrl.Add)
	api.DELETE("/deletecart/:id", setUser, ctrl.Remove)
	api.DELETE("/resetcart", setUser, ctrl.Reset)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCartGetEmptySignals404(t *testing.T) {
	userID := primitive.NewObjectID()
	r := newCartRouter(userID, &menuRepoStub{items: map[primitive.ObjectID]models.MenuItem{}},
		&cartRepoStub{carts: map[primitive.ObjectID]models.Cart{}})

	rec := doJSON(r, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.False(t, env.Success)
	require.Equal(t, "cart_empty", env.Code)
}

func TestCartAddAndGetRoundTrip(t *testing.T) {
	userID := primitive.NewObjectID()
	item := models.MenuItem{ID: primitive.NewObjectID(), Name: "pizza", Category: "mains", Price: 10}
	menus := &menuRepoStub{items: map[primitive.ObjectID]models.MenuItem{item.ID: item}}
	carts := &cartRepoStub{carts: map[primitive.ObjectID]models.Cart{}}
	r := newCartRouter(userID, menus, carts)

	rec := doJSON(r, http.MethodPost, "/api/cart", gin.H{"menuItemId": item.ID.Hex(), "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(r, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		envelope
		Cart services.CartDetail `json:"cart"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Len(t, resp.Cart.Items, 1)
	require.Equal(t, "pizza", resp.Cart.Items[0].MenuItem.Name)
	require.Equal(t, 2, resp.Cart.Items[0].Quantity)
}

func TestCartAddUnknownMenuItemIs404(t *testing.T) {
	userID := primitive.NewObjectID()
	r := newCartRouter(userID, &menuRepoStub{items: map[primitive.ObjectID]models.MenuItem{}},
		&cartRepoStub{carts: map[primitive.ObjectID]models.Cart{}})

	rec := doJSON(r, http.MethodPost, "/api/cart", gin.H{"menuItemId": primitive.NewObjectID().Hex(), "quantity": 1})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartAddMalformedBodyIs400(t *testing.T) {
	userID := primitive.NewObjectID()
	r := newCartRouter(userID, &menuRepoStub{items: map[primitive.ObjectID]models.MenuItem{}},
		&cartRepoStub{carts: map[primitive.ObjectID]models.Cart{}})

	rec := doJSON(r, http.MethodPost, "/api/cart", gin.H{"quantity": 1})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(r, http.MethodPost, "/api/cart", gin.H{"menuItemId": "not-hex", "quantity": 1})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartRemoveLastItemReportsEmpty(t *testing.T) {
	userID := primitive.NewObjectID()
	item := models.MenuItem{ID: primitive.NewObjectID(), Name: "pizza", Category: "mains", Price: 10}
	menus := &menuRepoStub{items: map[primitive.ObjectID]models.MenuItem{item.ID: item}}
	carts := &cartRepoStub{carts: map[primitive.ObjectID]models.Cart{}}
	r := newCartRouter(userID, menus, carts)

	rec := doJSON(r, http.MethodPost, "/api/cart", gin.H{"menuItemId": item.ID.Hex(), "quantity": 1})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(r, http.MethodDelete, "/api/deletecart/"+item.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Cart is now empty")
	require.Empty(t, carts.carts)
}

func TestCartResetAlwaysSucceeds(t *testing.T) {
	userID := primitive.NewObjectID()
	r := newCartRouter(userID, &menuRepoStub{items: map[primitive.ObjectID]models.MenuItem{}},
		&cartRepoStub{carts: map[primitive.ObjectID]models.Cart{}})

	rec := doJSON(r, http.MethodDelete, "/api/resetcart", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.True(t, env.Success)
}
