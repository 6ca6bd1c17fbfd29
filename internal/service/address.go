package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

type AddressService struct {
	users  port.UserRepository
	logger *zap.Logger
	newID  func() uuid.UUID
}

func NewAddress(users port.UserRepository, logger *zap.Logger) *AddressService {
	return &AddressService{
		users:  users,
		logger: logger.Named("address"),
		newID:  uuid.New,
	}
}

func (s *AddressService) List(ctx context.Context, userID uuid.UUID) ([]domain.Address, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("users.GetUser: %w", err)
	}

	return user.Addresses, nil
}

// Create assigns a fresh id to address and returns the whole address book.
func (s *AddressService) Create(ctx context.Context, userID uuid.UUID, address domain.Address) ([]domain.Address, error) {
	address.ID = s.newID()

	addresses, err := s.mutate(ctx, userID, func(user *domain.User) error {
		return user.AddAddress(address)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("address created", zap.Stringer("userID", userID), zap.Stringer("addressID", address.ID))
	return addresses, nil
}

func (s *AddressService) Update(ctx context.Context, userID, addressID uuid.UUID, patch domain.AddressPatch) ([]domain.Address, error) {
	addresses, err := s.mutate(ctx, userID, func(user *domain.User) error {
		return user.UpdateAddress(addressID, patch)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("address updated", zap.Stringer("userID", userID), zap.Stringer("addressID", addressID))
	return addresses, nil
}

func (s *AddressService) Delete(ctx context.Context, userID, addressID uuid.UUID) ([]domain.Address, error) {
	addresses, err := s.mutate(ctx, userID, func(user *domain.User) error {
		return user.DeleteAddress(addressID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("address deleted", zap.Stringer("userID", userID), zap.Stringer("addressID", addressID))
	return addresses, nil
}

func (s *AddressService) mutate(ctx context.Context, userID uuid.UUID, fn port.UserMutation) ([]domain.Address, error) {
	user, err := s.users.UpdateUser(ctx, userID, fn)
	if err != nil {
		return nil, fmt.Errorf("users.UpdateUser: %w", err)
	}

	addresses := user.Addresses
	if addresses == nil {
		addresses = []domain.Address{}
	}
	return addresses, nil
}
