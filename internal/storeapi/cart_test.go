package storeapi_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddAdjustRemove(t *testing.T) {
	f := newFixture()
	c := f.clientFor(t)
	p := f.addProduct(t, "Shirt", domain.CategoryMenClothing, "20.00", 4.2)

	add := func(body string) cartResponse {
		var resp cartResponse
		require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/cart", body, &resp))
		return resp
	}

	add(fmt.Sprintf(`{"productId":%q,"size":"M"}`, p.ID))
	resp := add(fmt.Sprintf(`{"productId":%q,"size":"M"}`, p.ID))
	require.Len(t, resp.Cart, 1)
	assert.Equal(t, 2, resp.Cart[0].Quantity)
	require.NotNil(t, resp.Cart[0].Size)
	assert.Equal(t, "M", *resp.Cart[0].Size)
	assert.Equal(t, "Shirt", resp.Cart[0].Product.Name)

	resp = add(fmt.Sprintf(`{"productId":%q}`, p.ID))
	require.Len(t, resp.Cart, 2)
	assert.Nil(t, resp.Cart[1].Size)

	code := c.do(http.MethodPost, "/api/cart/quantity",
		fmt.Sprintf(`{"productId":%q,"action":"decrement","size":"M"}`, p.ID), &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, resp.Cart[0].Quantity)

	// only the line without a variant
	code = c.do(http.MethodDelete, "/api/cart/"+p.ID.String()+"?size=", "", &resp)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Cart, 1)
	require.NotNil(t, resp.Cart[0].Size)

	code = c.do(http.MethodDelete, "/api/cart/"+p.ID.String()+"?size=M", "", &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, resp.Cart)
}

func TestCart_RemoveAllVariants(t *testing.T) {
	f := newFixture()
	c := f.clientFor(t)
	p := f.addProduct(t, "Hat", domain.CategoryMenClothing, "15.00", 4.0)

	c.do(http.MethodPost, "/api/cart", fmt.Sprintf(`{"productId":%q}`, p.ID), nil)
	c.do(http.MethodPost, "/api/cart", fmt.Sprintf(`{"productId":%q,"size":"M"}`, p.ID), nil)

	var resp cartResponse
	code := c.do(http.MethodDelete, "/api/cart/"+p.ID.String(), "", &resp)

	require.Equal(t, http.StatusOK, code)
	assert.NotNil(t, resp.Cart)
	assert.Empty(t, resp.Cart)
}

func TestCart_Clear(t *testing.T) {
	f := newFixture()
	c := f.clientFor(t)
	p := f.addProduct(t, "Belt", domain.CategoryMenClothing, "12.00", 3.5)
	c.do(http.MethodPost, "/api/cart", fmt.Sprintf(`{"productId":%q}`, p.ID), nil)

	for range 2 {
		var resp cartResponse
		require.Equal(t, http.StatusOK, c.do(http.MethodDelete, "/api/cart/clear", "", &resp))
		assert.NotNil(t, resp.Cart)
		assert.Empty(t, resp.Cart)
	}

	var resp cartResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/cart", "", &resp))
	assert.Empty(t, resp.Cart)
}

func TestCart_Errors(t *testing.T) {
	f := newFixture()
	c := f.clientFor(t)
	p := f.addProduct(t, "Scarf", domain.CategoryWomenClothing, "8.00", 4.1)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{name: "missing productId", method: http.MethodPost, target: "/api/cart", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "malformed productId", method: http.MethodPost, target: "/api/cart", body: `{"productId":"x"}`, wantStatus: http.StatusBadRequest},
		{name: "unknown product", method: http.MethodPost, target: "/api/cart", body: fmt.Sprintf(`{"productId":%q}`, uuid.New()), wantStatus: http.StatusNotFound},
		{name: "unknown field", method: http.MethodPost, target: "/api/cart", body: fmt.Sprintf(`{"productId":%q,"qty":3}`, p.ID), wantStatus: http.StatusBadRequest},
		{name: "bad action", method: http.MethodPost, target: "/api/cart/quantity", body: fmt.Sprintf(`{"productId":%q,"action":"double"}`, p.ID), wantStatus: http.StatusBadRequest},
		{name: "adjust missing line", method: http.MethodPost, target: "/api/cart/quantity", body: fmt.Sprintf(`{"productId":%q,"action":"increment"}`, p.ID), wantStatus: http.StatusNotFound},
		{name: "malformed path id", method: http.MethodDelete, target: "/api/cart/nope", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, c.do(tt.method, tt.target, tt.body, nil))
		})
	}
}

func TestWishlist(t *testing.T) {
	f := newFixture()
	c := f.clientFor(t)
	p := f.addProduct(t, "Necklace", domain.CategoryJewelery, "120.00", 4.9)

	var resp wishlistResponse
	for range 2 {
		code := c.do(http.MethodPost, "/api/wishlist", fmt.Sprintf(`{"productId":%q,"action":"ADD","size":"S"}`, p.ID), &resp)
		require.Equal(t, http.StatusOK, code)
	}
	require.Len(t, resp.Wishlist, 1)
	assert.Equal(t, "Necklace", resp.Wishlist[0].Product.Name)

	code := c.do(http.MethodPost, "/api/wishlist", fmt.Sprintf(`{"productId":%q,"action":"REMOVE"}`, p.ID), &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, resp.Wishlist)

	assert.Equal(t, http.StatusBadRequest,
		c.do(http.MethodPost, "/api/wishlist", fmt.Sprintf(`{"productId":%q,"action":"LIKE"}`, p.ID), nil))
	assert.Equal(t, http.StatusNotFound,
		c.do(http.MethodPost, "/api/wishlist", fmt.Sprintf(`{"productId":%q,"action":"ADD"}`, uuid.New()), nil))

	c.do(http.MethodPost, "/api/wishlist", fmt.Sprintf(`{"productId":%q,"action":"ADD"}`, p.ID), nil)
	require.Equal(t, http.StatusOK, c.do(http.MethodDelete, "/api/wishlist", "", &resp))
	assert.NotNil(t, resp.Wishlist)
	assert.Empty(t, resp.Wishlist)
}
