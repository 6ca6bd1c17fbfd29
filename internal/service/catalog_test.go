package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListProducts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	jacket := f.addProduct(t, "Jacket", domain.CategoryMenClothing, "80.00", 4.5)
	dress := f.addProduct(t, "Dress", domain.CategoryWomenClothing, "45.00", 4.0)
	f.addProduct(t, "Old Coat", domain.CategoryMenClothing, "20.00", 3.9)
	f.addProduct(t, "Ring", domain.CategoryJewelery, "10.00", 5)

	minRating := 4.0
	products, err := f.catalog.ListProducts(ctx, domain.ProductFilter{
		Categories: domain.ParseCategories("men-clothing,women-clothing"),
		MinRating:  &minRating,
		Sort:       domain.ParseProductSort("priceLowToHigh"),
	})
	require.NoError(t, err)

	var ids []uuid.UUID
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []uuid.UUID{dress.ID, jacket.ID}, ids)

	products, err = f.catalog.ListProducts(ctx, domain.ProductFilter{Categories: []domain.Category{"toys"}})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogService_GetProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ring := f.addProduct(t, "Ring", domain.CategoryJewelery, "10.00", 5)

	product, err := f.catalog.GetProduct(ctx, ring.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ring", product.Name)

	_, err = f.catalog.GetProduct(ctx, uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}
