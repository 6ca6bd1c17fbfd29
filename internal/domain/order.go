package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// MaxOrderTotal is the largest total an order column can hold.
var MaxOrderTotal = decimal.RequireFromString("9999999999.99")

// Order is immutable after creation except for Status.
type Order struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Items           []OrderItem
	ShippingAddress Address
	TotalAmount     Money
	Status          OrderStatus

	CreatedAt time.Time
}

// OrderItem is a line captured at checkout: name and price are copied from
// the product at that moment.
type OrderItem struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int
	Price     Money
	Size      *string
}

// NewOrder snapshots lines and address into a Processing order. Nothing in the
// result aliases the inputs.
func NewOrder(id, ownerID uuid.UUID, lines []CartLine, address Address, total Money, now time.Time) (Order, error) {
	if ownerID == uuid.Nil {
		return Order{}, fmt.Errorf("%w: ownerID is empty", ErrInvalidArgument)
	}
	if len(lines) == 0 {
		return Order{}, fmt.Errorf("%w: cart is empty", ErrInvalidState)
	}
	if total.Amount.IsNegative() {
		return Order{}, fmt.Errorf("%w: total amount is negative", ErrInvalidArgument)
	}
	if total.Amount.GreaterThan(MaxOrderTotal) {
		return Order{}, fmt.Errorf("%w: total amount[%s] exceeds %s", ErrInvalidArgument, total.Amount, MaxOrderTotal)
	}

	items := make([]OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, OrderItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
			Size:      cloneSize(NormalizeSize(line.Size)),
		})
	}

	return Order{
		ID:              id,
		OwnerID:         ownerID,
		Items:           items,
		ShippingAddress: address,
		TotalAmount:     total,
		Status:          OrderStatusProcessing,
		CreatedAt:       now,
	}, nil
}
