package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type OrderService struct {
	orders port.OrderRepository
}

func NewOrders(orders port.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// List returns the orders of userID, newest first.
func (s *OrderService) List(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	orders, err := s.orders.ListOrders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("orders.ListOrders: %w", err)
	}

	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, userID, orderID uuid.UUID) (domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID, userID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.GetOrder: %w", err)
	}

	return order, nil
}
