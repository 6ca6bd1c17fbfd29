package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

type ProfileService struct {
	users  port.UserRepository
	logger *zap.Logger
}

func NewProfile(users port.UserRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		users:  users,
		logger: logger.Named("profile"),
	}
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("users.GetUser: %w", err)
	}

	return user, nil
}

// Update changes name and email. A taken email fails with ErrConflict.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, patch domain.ProfilePatch) (domain.User, error) {
	user, err := s.users.UpdateUser(ctx, userID, func(user *domain.User) error {
		return user.ApplyProfile(patch)
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("users.UpdateUser: %w", err)
	}

	s.logger.Info("profile updated", zap.Stringer("userID", userID))

	return user, nil
}
