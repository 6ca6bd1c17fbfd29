package storeapi_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productsResponse struct {
	Products []productView `json:"products"`
}

func names(products []productView) []string {
	result := make([]string, 0, len(products))
	for _, p := range products {
		result = append(result, p.Name)
	}
	return result
}

func TestListProducts(t *testing.T) {
	f := newFixture()
	c := f.clientFor(t)

	f.addProduct(t, "Jacket", domain.CategoryMenClothing, "30.00", 4.5)
	f.addProduct(t, "Dress", domain.CategoryWomenClothing, "10.00", 4.0)
	f.addProduct(t, "Socks", domain.CategoryMenClothing, "5.00", 3.9)
	f.addProduct(t, "Cable", domain.CategoryElectronics, "1.00", 5.0)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "no filter keeps insertion order",
			query: "",
			want:  []string{"Jacket", "Dress", "Socks", "Cable"},
		},
		{
			name:  "categories rating and ascending price",
			query: "?category=men-clothing,women-clothing&rating=4&sort=priceLowToHigh",
			want:  []string{"Dress", "Jacket"},
		},
		{
			name:  "descending price",
			query: "?sort=priceHighToLow",
			want:  []string{"Jacket", "Dress", "Socks", "Cable"},
		},
		{
			name:  "unknown sort falls back to default order",
			query: "?sort=bogus&category=men-clothing",
			want:  []string{"Jacket", "Socks"},
		},
		{
			name:  "case-insensitive search",
			query: "?q=JACK",
			want:  []string{"Jacket"},
		},
		{
			name:  "unknown category matches nothing",
			query: "?category=toys",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp productsResponse
			code := c.do(http.MethodGet, "/api/products"+tt.query, "", &resp)

			require.Equal(t, http.StatusOK, code)
			assert.Equal(t, tt.want, names(resp.Products))
		})
	}
}

func TestListProducts_InvalidRating(t *testing.T) {
	c := newFixture().clientFor(t)

	var resp errorResponse
	code := c.do(http.MethodGet, "/api/products?rating=high", "", &resp)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, resp.Message, "rating")
}

func TestGetProduct(t *testing.T) {
	f := newFixture()
	c := f.clientFor(t)
	p := f.addProduct(t, "Ring", domain.CategoryJewelery, "99.99", 4.8)

	var resp struct {
		Product productView `json:"product"`
	}
	code := c.do(http.MethodGet, "/api/products/"+p.ID.String(), "", &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Ring", resp.Product.Name)
	assert.InDelta(t, 99.99, resp.Product.Price, 0.0001)
	assert.Equal(t, []string{"S", "M", "L"}, resp.Product.Sizes)

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/products/"+uuid.NewString(), "", nil))
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/products/not-an-id", "", nil))
}
