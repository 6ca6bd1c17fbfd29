package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type orderRepository struct {
	store *Store
	tx    *state
}

func (r *orderRepository) CreateOrder(_ context.Context, order domain.Order) (domain.Order, error) {
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

	err := r.store.access(r.tx, func(st *state) error {
		if _, ok := st.users[order.OwnerID]; !ok {
			return fmt.Errorf("%w: owner[%s]", domain.ErrNotFound, order.OwnerID)
		}
		if slices.ContainsFunc(st.orders, func(o domain.Order) bool { return o.ID == order.ID }) {
			return fmt.Errorf("%w: order[%s] already exists", domain.ErrConflict, order.ID)
		}

		order.CreatedAt = r.store.now()
		st.orders = append(st.orders, cloneOrder(order))
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	return order, nil
}

// ListOrders returns newest first; orders created at the same instant keep
// reverse insertion order.
func (r *orderRepository) ListOrders(_ context.Context, ownerID uuid.UUID) ([]domain.Order, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: ownerID is empty", domain.ErrInvalidArgument)
	}

	var result []domain.Order
	err := r.store.access(r.tx, func(st *state) error {
		for i := len(st.orders) - 1; i >= 0; i-- {
			if st.orders[i].OwnerID == ownerID {
				result = append(result, cloneOrder(st.orders[i]))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(result, func(a, b domain.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return result, nil
}

func (r *orderRepository) GetOrder(_ context.Context, orderID, ownerID uuid.UUID) (domain.Order, error) {
	if ownerID == uuid.Nil {
		return domain.Order{}, fmt.Errorf("%w: ownerID is empty", domain.ErrInvalidArgument)
	}

	var order domain.Order
	err := r.store.access(r.tx, func(st *state) error {
		i := slices.IndexFunc(st.orders, func(o domain.Order) bool {
			return o.ID == orderID && o.OwnerID == ownerID
		})
		if i < 0 {
			return fmt.Errorf("%w: order[%s]", domain.ErrNotFound, orderID)
		}
		order = cloneOrder(st.orders[i])
		return nil
	})

	return order, err
}
