package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

// CartService reconciles cart lines keyed by (product, size). Every
// mutation returns the cart with products resolved.
type CartService struct {
	users    port.UserRepository
	products port.ProductRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewCart(users port.UserRepository, products port.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{
		users:    users,
		products: products,
		logger:   logger.Named("cart"),
		now:      time.Now,
	}
}

func (s *CartService) View(ctx context.Context, userID uuid.UUID) ([]domain.CartLine, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("users.GetUser: %w", err)
	}

	return s.resolve(ctx, user.Cart)
}

func (s *CartService) Add(ctx context.Context, userID, productID uuid.UUID, size *string) ([]domain.CartLine, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("%w: productID is empty", domain.ErrInvalidArgument)
	}

	if _, err := s.products.GetProduct(ctx, productID); err != nil {
		return nil, fmt.Errorf("products.GetProduct: %w", err)
	}

	return s.mutate(ctx, userID, func(cart *domain.Cart) error {
		return cart.Add(productID, size, s.now())
	})
}

func (s *CartService) AdjustQuantity(ctx context.Context, userID, productID uuid.UUID, size *string, action domain.QuantityAction) ([]domain.CartLine, error) {
	if _, err := domain.ParseQuantityAction(string(action)); err != nil {
		return nil, err
	}

	return s.mutate(ctx, userID, func(cart *domain.Cart) error {
		return cart.AdjustQuantity(productID, size, action)
	})
}

// Remove deletes the lines of productID selected by filter. Removing nothing is not an error.
func (s *CartService) Remove(ctx context.Context, userID, productID uuid.UUID, filter domain.VariantFilter) ([]domain.CartLine, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("%w: productID is empty", domain.ErrInvalidArgument)
	}

	return s.mutate(ctx, userID, func(cart *domain.Cart) error {
		removed := cart.Remove(productID, filter)
		s.logger.Debug("cart lines removed",
			zap.Stringer("userID", userID),
			zap.Stringer("productID", productID),
			zap.Stringer("filter", filter),
			zap.Int("removed", removed))
		return nil
	})
}

func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) ([]domain.CartLine, error) {
	return s.mutate(ctx, userID, func(cart *domain.Cart) error {
		cart.Clear()
		return nil
	})
}

func (s *CartService) mutate(ctx context.Context, userID uuid.UUID, fn func(cart *domain.Cart) error) ([]domain.CartLine, error) {
	user, err := s.users.UpdateUser(ctx, userID, func(user *domain.User) error {
		return fn(&user.Cart)
	})
	if err != nil {
		return nil, fmt.Errorf("users.UpdateUser: %w", err)
	}

	return s.resolve(ctx, user.Cart)
}

func (s *CartService) resolve(ctx context.Context, cart domain.Cart) ([]domain.CartLine, error) {
	products, err := s.products.GetProducts(ctx, cart.ProductIDs())
	if err != nil {
		return nil, fmt.Errorf("products.GetProducts: %w", err)
	}

	return domain.ResolveCart(cart.Items, products), nil
}
