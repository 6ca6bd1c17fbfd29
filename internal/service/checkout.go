package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// CheckoutService turns a cart into an order. The order insert, the cart
// clearing and the history append commit together or not at all.
type CheckoutService struct {
	transactor port.Transactor
	currency   currency.Unit
	logger     *zap.Logger
	now        func() time.Time
	newID      func() uuid.UUID
}

func NewCheckout(transactor port.Transactor, unit currency.Unit, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		transactor: transactor,
		currency:   unit,
		logger:     logger.Named("checkout"),
		now:        time.Now,
		newID:      uuid.New,
	}
}

// Checkout places an order for the whole cart of userID, shipped to addressID.
// total is recorded as supplied by the caller.
func (s *CheckoutService) Checkout(ctx context.Context, userID, addressID uuid.UUID, total decimal.Decimal) (uuid.UUID, error) {
	totalAmount, err := domain.NewMoney(total, s.currency)
	if err != nil {
		return uuid.Nil, fmt.Errorf("domain.NewMoney: %w", err)
	}

	var order domain.Order

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, repos port.TxRepositories) error {
		_, err := repos.Users.UpdateUser(ctx, userID, func(user *domain.User) error {
			if user.Cart.IsEmpty() {
				return fmt.Errorf("%w: cart is empty", domain.ErrInvalidState)
			}

			address, ok := user.FindAddress(addressID)
			if !ok {
				return fmt.Errorf("%w: address[%s] not found", domain.ErrInvalidArgument, addressID)
			}

			lines, err := resolveForCheckout(ctx, repos.Products, user.Cart)
			if err != nil {
				return err
			}

			order, err = domain.NewOrder(s.newID(), userID, lines, address, totalAmount, s.now())
			if err != nil {
				return fmt.Errorf("domain.NewOrder: %w", err)
			}

			order, err = repos.Orders.CreateOrder(ctx, order)
			if err != nil {
				return fmt.Errorf("orders.CreateOrder: %w", err)
			}

			user.Cart.Clear()
			user.OrderIDs = append(user.OrderIDs, order.ID)
			return nil
		})
		if err != nil {
			return fmt.Errorf("users.UpdateUser: %w", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("transactor.WithinTx: %w", err)
	}

	s.logger.Info("order placed",
		zap.Stringer("userID", userID),
		zap.Stringer("orderID", order.ID),
		zap.Int("items", len(order.Items)),
		zap.String("total", order.TotalAmount.Amount.StringFixed(2)))

	return order.ID, nil
}

// resolveForCheckout prices every line with the current product. A vanished
// product fails the checkout instead of being dropped.
func resolveForCheckout(ctx context.Context, products port.ProductRepository, cart domain.Cart) ([]domain.CartLine, error) {
	ids := cart.ProductIDs()

	found, err := products.GetProducts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("products.GetProducts: %w", err)
	}

	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, fmt.Errorf("%w: product[%s] is no longer available", domain.ErrNotFound, id)
		}
	}

	return domain.ResolveCart(cart.Items, found), nil
}
