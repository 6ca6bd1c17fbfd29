package storeapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/repository/memory"
	"github.com/nikolayk812/storefront/internal/service"
	"github.com/nikolayk812/storefront/internal/storeapi"
	"github.com/nikolayk812/storefront/internal/webserver"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type client struct {
	t      *testing.T
	userID uuid.UUID
	server *webserver.Server
}

type fixture struct {
	store *memory.Store
}

func newFixture() *fixture {
	return &fixture{store: memory.NewStore()}
}

// clientFor provisions a user and a server that authenticates every request as that user.
func (f *fixture) clientFor(t *testing.T) *client {
	t.Helper()

	user, err := f.store.Users().CreateUser(context.Background(), domain.User{
		ID:    uuid.New(),
		Name:  gofakeit.Name(),
		Email: gofakeit.Email(),
	})
	require.NoError(t, err)

	logger := zap.NewNop()
	server := webserver.New(logger, config.Default().HTTP, webserver.DemoIdentity(user.ID), f.store)

	handler := storeapi.NewHandler(storeapi.Services{
		Catalog:   service.NewCatalog(f.store.Products(), logger),
		Cart:      service.NewCart(f.store.Users(), f.store.Products(), logger),
		Wishlist:  service.NewWishlist(f.store.Users(), f.store.Products(), logger),
		Addresses: service.NewAddress(f.store.Users(), logger),
		Profile:   service.NewProfile(f.store.Users(), logger),
		Orders:    service.NewOrders(f.store.Orders()),
		Checkout:  service.NewCheckout(f.store.Transactor(), currency.USD, logger),
	}, logger)
	handler.Register(server.API())

	return &client{t: t, userID: user.ID, server: server}
}

func (f *fixture) addProduct(t *testing.T, name string, category domain.Category, price string, rating float64) domain.Product {
	t.Helper()

	p := domain.Product{
		ID:       uuid.New(),
		Name:     name,
		Price:    domain.Money{Amount: decimal.RequireFromString(price), Currency: currency.USD},
		InStock:  true,
		Category: category,
		Rating:   rating,
		Sizes:    []string{"S", "M", "L"},
	}

	_, err := f.store.Products().InsertProducts(context.Background(), []domain.Product{p})
	require.NoError(t, err)
	return p
}

// do sends body as JSON and decodes the response into out when out is not nil.
func (c *client) do(method, target, body string, out any) int {
	c.t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	c.server.Handler().ServeHTTP(rec, req)

	if out != nil {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec.Code
}

func (c *client) createAddress() string {
	c.t.Helper()

	var resp addressesResponse
	code := c.do(http.MethodPost, "/api/user/addresses", `{
		"fullName":"Jane Doe","street":"1 Main St","city":"Springfield",
		"state":"IL","zip":"62701","phone":"555-0100","isDefault":true
	}`, &resp)
	require.Equal(c.t, http.StatusCreated, code)
	require.NotEmpty(c.t, resp.Addresses)
	return resp.Addresses[len(resp.Addresses)-1].ID
}

type productView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Category string   `json:"category"`
	Rating   float64  `json:"rating"`
	Sizes    []string `json:"sizes"`
}

type cartLineView struct {
	Product  productView `json:"product"`
	Quantity int         `json:"quantity"`
	Size     *string     `json:"size"`
}

type cartResponse struct {
	Cart []cartLineView `json:"cart"`
}

type wishlistResponse struct {
	Wishlist []struct {
		Product productView `json:"product"`
		Size    *string     `json:"size"`
	} `json:"wishlist"`
}

type addressView struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	City      string `json:"city"`
	IsDefault bool   `json:"isDefault"`
}

type addressesResponse struct {
	Addresses []addressView `json:"addresses"`
}

type orderView struct {
	ID    string `json:"id"`
	Items []struct {
		ProductID string  `json:"productId"`
		Name      string  `json:"name"`
		Quantity  int     `json:"quantity"`
		Price     float64 `json:"price"`
		Size      *string `json:"size"`
	} `json:"items"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
