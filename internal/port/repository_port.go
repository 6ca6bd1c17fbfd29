package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type ProductRepository interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error)
	// GetProducts returns the subset of productIDs that exist, keyed by id.
	GetProducts(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]domain.Product, error)
	// ReplaceProducts swaps the whole catalog for products.
	ReplaceProducts(ctx context.Context, products []domain.Product) (int, error)
	InsertProducts(ctx context.Context, products []domain.Product) (int, error)
}

// UserMutation edits a user in place. Returning an error aborts the update.
type UserMutation func(user *domain.User) error

type UserRepository interface {
	GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	// UpdateUser locks the user, applies fn and persists the result atomically.
	UpdateUser(ctx context.Context, userID uuid.UUID, fn UserMutation) (domain.User, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	ListOrders(ctx context.Context, ownerID uuid.UUID) ([]domain.Order, error)
	// GetOrder resolves the order only when ownerID owns it.
	GetOrder(ctx context.Context, orderID, ownerID uuid.UUID) (domain.Order, error)
}

// TxRepositories are bound to a single transaction.
type TxRepositories struct {
	Products ProductRepository
	Users    UserRepository
	Orders   OrderRepository
}

type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}
