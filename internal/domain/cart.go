package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Cart struct {
	OwnerID uuid.UUID
	Items   []CartItem
}

type CartItem struct {
	ProductID uuid.UUID
	Quantity  int
	Size      *string

	AddedAt time.Time
}

type QuantityAction string

const (
	QuantityIncrement QuantityAction = "increment"
	QuantityDecrement QuantityAction = "decrement"
)

func ParseQuantityAction(s string) (QuantityAction, error) {
	switch QuantityAction(s) {
	case QuantityIncrement, QuantityDecrement:
		return QuantityAction(s), nil
	default:
		return "", fmt.Errorf("%w: action[%s] must be increment or decrement", ErrInvalidArgument, s)
	}
}

func (c *Cart) find(productID uuid.UUID, size *string) int {
	for i, item := range c.Items {
		if item.ProductID == productID && sameSize(item.Size, size) {
			return i
		}
	}
	return -1
}

// Add increments the (product, size) line or appends it with quantity 1.
func (c *Cart) Add(productID uuid.UUID, size *string, now time.Time) error {
	if productID == uuid.Nil {
		return fmt.Errorf("%w: productID is empty", ErrInvalidArgument)
	}

	size = NormalizeSize(size)
	if i := c.find(productID, size); i >= 0 {
		c.Items[i].Quantity++
		return nil
	}

	c.Items = append(c.Items, CartItem{
		ProductID: productID,
		Quantity:  1,
		Size:      cloneSize(size),
		AddedAt:   now,
	})
	return nil
}

// AdjustQuantity moves the (product, size) line by one. Decrementing a line
// with quantity 1 deletes it.
func (c *Cart) AdjustQuantity(productID uuid.UUID, size *string, action QuantityAction) error {
	if productID == uuid.Nil {
		return fmt.Errorf("%w: productID is empty", ErrInvalidArgument)
	}
	if _, err := ParseQuantityAction(string(action)); err != nil {
		return err
	}

	size = NormalizeSize(size)
	i := c.find(productID, size)
	if i < 0 {
		return fmt.Errorf("%w: cart item product[%s] %s", ErrNotFound, productID, OnlyVariant(size))
	}

	switch action {
	case QuantityIncrement:
		c.Items[i].Quantity++
	case QuantityDecrement:
		if c.Items[i].Quantity > 1 {
			c.Items[i].Quantity--
		} else {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
	}

	return nil
}

// Remove deletes the lines of productID selected by filter and reports how many went.
func (c *Cart) Remove(productID uuid.UUID, filter VariantFilter) int {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID == productID && filter.Matches(item.Size) {
			continue
		}
		kept = append(kept, item)
	}

	removed := len(c.Items) - len(kept)
	c.Items = kept
	return removed
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) ProductIDs() []uuid.UUID {
	return uniqueProductIDs(len(c.Items), func(i int) uuid.UUID { return c.Items[i].ProductID })
}

// CartLine is a cart item with its product resolved.
type CartLine struct {
	Product  Product
	Quantity int
	Size     *string
}

// ResolveCart attaches products to items; items whose product is missing are skipped.
func ResolveCart(items []CartItem, products map[uuid.UUID]Product) []CartLine {
	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		p, ok := products[item.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, CartLine{
			Product:  p,
			Quantity: item.Quantity,
			Size:     cloneSize(item.Size),
		})
	}
	return lines
}

func uniqueProductIDs(n int, at func(int) uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, n)
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		id := at(i)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
