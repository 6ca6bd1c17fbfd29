package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWishlistService_Toggle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p1 := f.addProduct(t, "Dress", domain.CategoryWomenClothing, "49.00", 4.2)

	lines, err := f.wishlist.Toggle(ctx, f.user.ID, p1.ID, domain.WishlistAdd, domain.SizeOf("S"))
	require.NoError(t, err)
	require.Len(t, lines, 1)

	// repeated ADD is a no-op
	lines, err = f.wishlist.Toggle(ctx, f.user.ID, p1.ID, domain.WishlistAdd, domain.SizeOf("S"))
	require.NoError(t, err)
	require.Len(t, lines, 1)

	lines, err = f.wishlist.Toggle(ctx, f.user.ID, p1.ID, domain.WishlistAdd, domain.SizeOf("M"))
	require.NoError(t, err)
	require.Len(t, lines, 2)

	lines, err = f.wishlist.Toggle(ctx, f.user.ID, p1.ID, domain.WishlistRemove, domain.SizeOf("S"))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "M", *lines[0].Size)
	assert.Equal(t, "Dress", lines[0].Product.Name)

	lines, err = f.wishlist.Toggle(ctx, f.user.ID, p1.ID, domain.WishlistRemove, nil)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestWishlistService_ToggleErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p1 := f.addProduct(t, "Dress", domain.CategoryWomenClothing, "49.00", 4.2)

	_, err := f.wishlist.Toggle(ctx, f.user.ID, p1.ID, "LIKE", nil)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = f.wishlist.Toggle(ctx, f.user.ID, uuid.Nil, domain.WishlistAdd, nil)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = f.wishlist.Toggle(ctx, f.user.ID, uuid.New(), domain.WishlistAdd, nil)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWishlistService_Clear(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p1 := f.addProduct(t, "Dress", domain.CategoryWomenClothing, "49.00", 4.2)

	_, err := f.wishlist.Toggle(ctx, f.user.ID, p1.ID, domain.WishlistAdd, nil)
	require.NoError(t, err)

	lines, err := f.wishlist.Clear(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	lines, err = f.wishlist.View(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestWishlistService_LogsMutations(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	f := newFixtureWithLogger(t, zap.New(core))
	ctx := context.Background()
	p := f.addProduct(t, "Scarf", domain.CategoryWomenClothing, "19.00", 4.0)

	_, err := f.wishlist.Toggle(ctx, f.user.ID, p.ID, domain.WishlistAdd, nil)
	require.NoError(t, err)

	_, err = f.wishlist.Clear(ctx, f.user.ID)
	require.NoError(t, err)

	toggled := logs.FilterMessage("wishlist toggled").All()
	require.Len(t, toggled, 1)
	assert.Equal(t, p.ID.String(), toggled[0].ContextMap()["productID"])
	assert.Equal(t, string(domain.WishlistAdd), toggled[0].ContextMap()["action"])
	assert.EqualValues(t, 1, toggled[0].ContextMap()["items"])

	cleared := logs.FilterMessage("wishlist cleared").All()
	require.Len(t, cleared, 1)
	assert.Equal(t, f.user.ID.String(), cleared[0].ContextMap()["userID"])
}
