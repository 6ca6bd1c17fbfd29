package repository_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/currency"
)

type productRepositorySuite struct {
	suite.Suite

	repo port.ProductRepository
	pool *pgxpool.Pool
}

// entry point to run the tests in the suite
func TestProductRepositorySuite(t *testing.T) {
	suite.Run(t, new(productRepositorySuite))
}

// before all tests in the suite
func (suite *productRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(suite.T())
	suite.Require().NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)

	suite.repo = repository.NewProduct(suite.pool)
}

// after all tests in the suite
func (suite *productRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *productRepositorySuite) TestInsertAndGetProduct() {
	defer suite.deleteAll()

	withOriginal := randomProduct()
	original := domain.Money{Amount: withOriginal.Price.Amount.Add(decimal.NewFromInt(10)), Currency: withOriginal.Price.Currency}
	withOriginal.OriginalPrice = &original

	tests := []struct {
		name      string
		product   domain.Product
		wantError error
	}{
		{
			name:    "insert product: ok",
			product: randomProduct(),
		},
		{
			name:    "insert product with original price: ok",
			product: withOriginal,
		},
		{
			name: "insert product without sizes: ok",
			product: func() domain.Product {
				p := randomProduct()
				p.Sizes = nil
				return p
			}(),
		},
		{
			name: "insert product with unknown category: error",
			product: func() domain.Product {
				p := randomProduct()
				p.Category = "toys"
				return p
			}(),
			wantError: domain.ErrInvalidArgument,
		},
		{
			name: "insert product with rating above five: error",
			product: func() domain.Product {
				p := randomProduct()
				p.Rating = 5.5
				return p
			}(),
			wantError: domain.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			n, err := suite.repo.InsertProducts(ctx, []domain.Product{tt.product})
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, n)

			actual, err := suite.repo.GetProduct(ctx, tt.product.ID)
			require.NoError(t, err)

			assertProduct(t, tt.product, actual)
		})
	}
}

func (suite *productRepositorySuite) TestGetProduct_NotFound() {
	t := suite.T()

	_, err := suite.repo.GetProduct(t.Context(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = suite.repo.GetProduct(t.Context(), uuid.Nil)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func (suite *productRepositorySuite) TestGetProducts() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	p1, p2 := randomProduct(), randomProduct()
	_, err := suite.repo.InsertProducts(ctx, []domain.Product{p1, p2})
	require.NoError(t, err)

	missing := uuid.New()
	found, err := suite.repo.GetProducts(ctx, []uuid.UUID{p1.ID, missing, p2.ID})
	require.NoError(t, err)

	require.Len(t, found, 2)
	assertProduct(t, p1, found[p1.ID])
	assertProduct(t, p2, found[p2.ID])
	assert.NotContains(t, found, missing)

	empty, err := suite.repo.GetProducts(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func (suite *productRepositorySuite) TestListProducts() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := func(name string, category domain.Category, price string, rating float64) domain.Product {
		p := randomProduct()
		p.Name = name
		p.Category = category
		p.Price = domain.Money{Amount: decimal.RequireFromString(price), Currency: currency.USD}
		p.Rating = rating
		return p
	}

	a := product("Slim Fit Jacket", domain.CategoryMenClothing, "10.00", 4.5)
	b := product("Silver Ring", domain.CategoryJewelery, "5.00", 4.8)
	c := product("Denim Jacket", domain.CategoryWomenClothing, "20.00", 3.0)
	d := product("100%_cotton tee", domain.CategoryMenClothing, "7.50", 4.1)

	_, err := suite.repo.InsertProducts(ctx, []domain.Product{a, b, c, d})
	require.NoError(t, err)

	minRating := 4.0

	tests := []struct {
		name    string
		filter  domain.ProductFilter
		wantIDs []uuid.UUID
	}{
		{
			name:    "no filter keeps insertion order: ok",
			filter:  domain.ProductFilter{},
			wantIDs: []uuid.UUID{a.ID, b.ID, c.ID, d.ID},
		},
		{
			name: "categories and rating sorted by price: ok",
			filter: domain.ProductFilter{
				Categories: []domain.Category{domain.CategoryMenClothing, domain.CategoryJewelery},
				MinRating:  &minRating,
				Sort:       domain.SortPriceLowToHigh,
			},
			wantIDs: []uuid.UUID{b.ID, d.ID, a.ID},
		},
		{
			name:    "search is case insensitive: ok",
			filter:  domain.ProductFilter{Search: "JACKET", Sort: domain.SortPriceHighToLow},
			wantIDs: []uuid.UUID{c.ID, a.ID},
		},
		{
			name:    "search wildcards match literally: ok",
			filter:  domain.ProductFilter{Search: "%_c"},
			wantIDs: []uuid.UUID{d.ID},
		},
		{
			name:   "no match: ok",
			filter: domain.ProductFilter{Search: "sofa"},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			products, err := suite.repo.ListProducts(t.Context(), tt.filter)
			require.NoError(t, err)

			var ids []uuid.UUID
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func (suite *productRepositorySuite) TestReplaceProducts() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	old := randomProduct()
	_, err := suite.repo.InsertProducts(ctx, []domain.Product{old})
	require.NoError(t, err)

	fresh := randomProduct()
	fresh.ID = uuid.Nil

	n, err := suite.repo.ReplaceProducts(ctx, []domain.Product{fresh})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	products, err := suite.repo.ListProducts(ctx, domain.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, fresh.Name, products[0].Name)
	assert.NotEqual(t, uuid.Nil, products[0].ID)

	// a bad batch leaves the catalog untouched
	bad := randomProduct()
	bad.Name = ""
	_, err = suite.repo.ReplaceProducts(ctx, []domain.Product{randomProduct(), bad})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	products, err = suite.repo.ListProducts(ctx, domain.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, fresh.Name, products[0].Name)
}

func (suite *productRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE products CASCADE")
	suite.NoError(err)
}
