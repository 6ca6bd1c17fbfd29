package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if order.OwnerID == uuid.Nil {
		return domain.Order{}, fmt.Errorf("%w: ownerID is empty", domain.ErrInvalidArgument)
	}
	if len(order.Items) == 0 {
		return domain.Order{}, fmt.Errorf("%w: order has no items", domain.ErrInvalidArgument)
	}
	if !order.Status.Valid() {
		return domain.Order{}, fmt.Errorf("%w: status[%s] is not valid", domain.ErrInvalidArgument, order.Status)
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}

	items, err := marshalOrderItems(order.Items)
	if err != nil {
		return domain.Order{}, fmt.Errorf("marshalOrderItems: %w", err)
	}

	address, err := json.Marshal(toAddressDoc(order.ShippingAddress))
	if err != nil {
		return domain.Order{}, fmt.Errorf("json.Marshal: %w", err)
	}

	createdAt, err := r.q.InsertOrder(ctx, db.InsertOrderParams{
		ID:              order.ID,
		OwnerID:         order.OwnerID,
		Items:           items,
		ShippingAddress: address,
		TotalAmount:     order.TotalAmount.Amount,
		TotalCurrency:   order.TotalAmount.Currency.String(),
		Status:          string(order.Status),
	})
	if err != nil {
		return domain.Order{}, mapError("q.InsertOrder", err)
	}
	order.CreatedAt = createdAt

	return order, nil
}

func (r *orderRepository) ListOrders(ctx context.Context, ownerID uuid.UUID) ([]domain.Order, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: ownerID is empty", domain.ErrInvalidArgument)
	}

	rows, err := r.q.ListOrders(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrders: %w", err)
	}

	orders, err := mapOrderRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapOrderRowsToDomain: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID, ownerID uuid.UUID) (domain.Order, error) {
	if ownerID == uuid.Nil {
		return domain.Order{}, fmt.Errorf("%w: ownerID is empty", domain.ErrInvalidArgument)
	}

	// a foreign order is indistinguishable from a missing one
	row, err := r.q.GetOrder(ctx, db.GetOrderParams{ID: orderID, OwnerID: ownerID})
	if err != nil {
		return domain.Order{}, mapError("q.GetOrder", err)
	}

	order, err := mapOrderRowToDomain(row)
	if err != nil {
		return domain.Order{}, fmt.Errorf("mapOrderRowToDomain: %w", err)
	}

	return order, nil
}

func mapOrderRowToDomain(row db.Order) (domain.Order, error) {
	items, err := unmarshalOrderItems(row.Items)
	if err != nil {
		return domain.Order{}, fmt.Errorf("unmarshalOrderItems: %w", err)
	}

	var address addressDoc
	if err := unmarshalDoc(row.ShippingAddress, &address); err != nil {
		return domain.Order{}, fmt.Errorf("unmarshalDoc: %w", err)
	}

	total, err := toMoney(row.TotalAmount, row.TotalCurrency)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order[%s]: %w", row.ID, err)
	}

	return domain.Order{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		Items:           items,
		ShippingAddress: address.toDomain(),
		TotalAmount:     total,
		Status:          domain.OrderStatus(row.Status),
		CreatedAt:       row.CreatedAt,
	}, nil
}

func mapOrderRowsToDomain(rows []db.Order) ([]domain.Order, error) {
	var orders []domain.Order

	for _, row := range rows {
		order, err := mapOrderRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapOrderRowToDomain: %w", err)
		}

		orders = append(orders, order)
	}

	return orders, nil
}
