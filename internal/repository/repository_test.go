package repository_test

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"
)

// startPostgres runs a migrated postgres container that is removed when tb finishes.
func startPostgres(tb testing.TB) (*postgres.PostgresContainer, string, error) {
	ctx := tb.Context()

	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../migrations/01_products.up.sql",
			"../migrations/02_users.up.sql",
			"../migrations/03_orders.up.sql"),
	)
	testcontainers.CleanupContainer(tb, postgresContainer)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

var categories = []domain.Category{
	domain.CategoryMenClothing,
	domain.CategoryWomenClothing,
	domain.CategoryJewelery,
	domain.CategoryElectronics,
}

func randomProduct() domain.Product {
	return domain.Product{
		ID:          uuid.New(),
		Name:        gofakeit.ProductName(),
		Description: gofakeit.ProductDescription(),
		Price:       randomMoney(),
		InStock:     gofakeit.Bool(),
		Category:    categories[gofakeit.IntN(len(categories))],
		ImageURL:    gofakeit.URL(),
		Rating:      float64(gofakeit.IntRange(0, 50)) / 10,
		Sizes:       []string{"S", "M", "L"},
	}
}

func randomUser() domain.User {
	return domain.User{
		ID:           uuid.New(),
		Name:         gofakeit.Name(),
		Email:        gofakeit.Email(),
		PasswordHash: gofakeit.Password(true, true, true, false, false, 32),
	}
}

func randomAddress() domain.Address {
	return domain.Address{
		ID:       uuid.New(),
		FullName: gofakeit.Name(),
		Street:   gofakeit.Street(),
		City:     gofakeit.City(),
		State:    gofakeit.State(),
		Zip:      gofakeit.Zip(),
		Phone:    gofakeit.Phone(),
	}
}

func randomMoney() domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
		Currency: randomCurrency(),
	}
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}

func compareOptions() cmp.Options {
	return cmp.Options{
		cmp.Comparer(func(x, y currency.Unit) bool {
			return x.String() == y.String()
		}),
		cmp.Comparer(func(x, y decimal.Decimal) bool {
			return x.Equal(y)
		}),
		cmpopts.EquateEmpty(),
	}
}

func assertProduct(t *testing.T, expected, actual domain.Product) {
	t.Helper()

	opts := append(compareOptions(), cmpopts.IgnoreFields(domain.Product{}, "CreatedAt"))

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.False(t, actual.CreatedAt.IsZero())
}
