package service_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_ListNewestFirstAndScoped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	shirt := f.addProduct(t, "Shirt", domain.CategoryMenClothing, "19.99", 4)
	address := f.addAddress(t)

	var placed []uuid.UUID
	for range 3 {
		_, err := f.cart.Add(ctx, f.user.ID, shirt.ID, nil)
		require.NoError(t, err)

		orderID, err := f.checkout.Checkout(ctx, f.user.ID, address.ID, decimal.RequireFromString("19.99"))
		require.NoError(t, err)
		placed = append([]uuid.UUID{orderID}, placed...)
	}

	orders, err := f.orders.List(ctx, f.user.ID)
	require.NoError(t, err)

	var ids []uuid.UUID
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, placed, ids)

	stranger, err := f.store.Users().CreateUser(ctx, domain.User{ID: uuid.New(), Name: "Stranger", Email: gofakeit.Email()})
	require.NoError(t, err)

	_, err = f.orders.Get(ctx, stranger.ID, placed[0])
	require.ErrorIs(t, err, domain.ErrNotFound)

	none, err := f.orders.List(ctx, stranger.ID)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
