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

type WishlistService struct {
	users    port.UserRepository
	products port.ProductRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewWishlist(users port.UserRepository, products port.ProductRepository, logger *zap.Logger) *WishlistService {
	return &WishlistService{
		users:    users,
		products: products,
		logger:   logger.Named("wishlist"),
		now:      time.Now,
	}
}

func (s *WishlistService) View(ctx context.Context, userID uuid.UUID) ([]domain.WishlistLine, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("users.GetUser: %w", err)
	}

	return s.resolve(ctx, user.Wishlist)
}

// Toggle adds or removes a (product, size) entry. Only ADD requires the product to exist.
func (s *WishlistService) Toggle(ctx context.Context, userID, productID uuid.UUID, action domain.WishlistAction, size *string) ([]domain.WishlistLine, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("%w: productID is empty", domain.ErrInvalidArgument)
	}
	if _, err := domain.ParseWishlistAction(string(action)); err != nil {
		return nil, err
	}

	if action == domain.WishlistAdd {
		if _, err := s.products.GetProduct(ctx, productID); err != nil {
			return nil, fmt.Errorf("products.GetProduct: %w", err)
		}
	}

	user, err := s.users.UpdateUser(ctx, userID, func(user *domain.User) error {
		return user.Wishlist.Toggle(productID, action, size, s.now())
	})
	if err != nil {
		return nil, fmt.Errorf("users.UpdateUser: %w", err)
	}

	s.logger.Debug("wishlist toggled",
		zap.Stringer("userID", userID),
		zap.Stringer("productID", productID),
		zap.String("action", string(action)),
		zap.Int("items", len(user.Wishlist.Items)))

	return s.resolve(ctx, user.Wishlist)
}

func (s *WishlistService) Clear(ctx context.Context, userID uuid.UUID) ([]domain.WishlistLine, error) {
	if _, err := s.users.UpdateUser(ctx, userID, func(user *domain.User) error {
		user.Wishlist.Clear()
		return nil
	}); err != nil {
		return nil, fmt.Errorf("users.UpdateUser: %w", err)
	}

	s.logger.Debug("wishlist cleared", zap.Stringer("userID", userID))
	return []domain.WishlistLine{}, nil
}

func (s *WishlistService) resolve(ctx context.Context, wishlist domain.Wishlist) ([]domain.WishlistLine, error) {
	products, err := s.products.GetProducts(ctx, wishlist.ProductIDs())
	if err != nil {
		return nil, fmt.Errorf("products.GetProducts: %w", err)
	}

	return domain.ResolveWishlist(wishlist.Items, products), nil
}
