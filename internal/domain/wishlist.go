package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Wishlist is a set of liked products keyed by (product, size).
type Wishlist struct {
	OwnerID uuid.UUID
	Items   []WishlistItem
}

type WishlistItem struct {
	ProductID uuid.UUID
	Size      *string

	AddedAt time.Time
}

type WishlistAction string

const (
	WishlistAdd    WishlistAction = "ADD"
	WishlistRemove WishlistAction = "REMOVE"
)

func ParseWishlistAction(s string) (WishlistAction, error) {
	switch WishlistAction(s) {
	case WishlistAdd, WishlistRemove:
		return WishlistAction(s), nil
	default:
		return "", fmt.Errorf("%w: action[%s] must be ADD or REMOVE", ErrInvalidArgument, s)
	}
}

func (w *Wishlist) Contains(productID uuid.UUID, size *string) bool {
	size = NormalizeSize(size)
	for _, item := range w.Items {
		if item.ProductID == productID && sameSize(item.Size, size) {
			return true
		}
	}
	return false
}

// Toggle applies action. ADD is a no-op for an existing entry. REMOVE with a
// nil size drops every entry of the product, otherwise only the matching one.
func (w *Wishlist) Toggle(productID uuid.UUID, action WishlistAction, size *string, now time.Time) error {
	if productID == uuid.Nil {
		return fmt.Errorf("%w: productID is empty", ErrInvalidArgument)
	}

	size = NormalizeSize(size)

	switch action {
	case WishlistAdd:
		if w.Contains(productID, size) {
			return nil
		}
		w.Items = append(w.Items, WishlistItem{
			ProductID: productID,
			Size:      cloneSize(size),
			AddedAt:   now,
		})
	case WishlistRemove:
		filter := AllVariants()
		if size != nil {
			filter = OnlyVariant(size)
		}
		kept := w.Items[:0]
		for _, item := range w.Items {
			if item.ProductID == productID && filter.Matches(item.Size) {
				continue
			}
			kept = append(kept, item)
		}
		w.Items = kept
	default:
		_, err := ParseWishlistAction(string(action))
		return err
	}

	return nil
}

func (w *Wishlist) Clear() {
	w.Items = nil
}

func (w Wishlist) ProductIDs() []uuid.UUID {
	return uniqueProductIDs(len(w.Items), func(i int) uuid.UUID { return w.Items[i].ProductID })
}

type WishlistLine struct {
	Product Product
	Size    *string
}

func ResolveWishlist(items []WishlistItem, products map[uuid.UUID]Product) []WishlistLine {
	lines := make([]WishlistLine, 0, len(items))
	for _, item := range items {
		p, ok := products[item.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, WishlistLine{Product: p, Size: cloneSize(item.Size)})
	}
	return lines
}
