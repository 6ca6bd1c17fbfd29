package app_test

import (
	"context"
	"testing"

	"github.com/nikolayk812/storefront/internal/app"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

func TestOpenBackend_Memory(t *testing.T) {
	ctx := context.Background()

	backend, err := app.OpenBackend(ctx, config.DatabaseConfig{Driver: config.DriverMemory}, currency.USD, zap.NewNop())
	require.NoError(t, err)
	defer backend.Close()

	require.NoError(t, backend.Health.Ping(ctx))

	products, err := backend.Products.ListProducts(ctx, domain.ProductFilter{})
	require.NoError(t, err)
	assert.NotEmpty(t, products)
}

func TestOpenBackend_UnknownDriver(t *testing.T) {
	_, err := app.OpenBackend(context.Background(), config.DatabaseConfig{Driver: "mongo"}, currency.USD, zap.NewNop())
	require.Error(t, err)
}

func TestOpenBackend_BadPostgresURL(t *testing.T) {
	_, err := app.OpenBackend(context.Background(), config.DatabaseConfig{
		Driver: config.DriverPostgres,
		URL:    "::not a url::",
	}, currency.USD, zap.NewNop())
	require.Error(t, err)
}
