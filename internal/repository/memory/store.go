// Package memory keeps the storefront documents in process memory. It backs
// the memory database driver and the service and handler tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

// Store is safe for concurrent use. A single mutex serializes every access,
// which also gives UpdateUser and WithinTx their atomicity.
type Store struct {
	mu    sync.Mutex
	state *state
	now   func() time.Time
}

type state struct {
	products []domain.Product
	users    map[uuid.UUID]domain.User
	orders   []domain.Order
}

func NewStore() *Store {
	return &Store{
		state: &state{users: make(map[uuid.UUID]domain.User)},
		now:   time.Now,
	}
}

// WithClock replaces the source of created timestamps.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

func (s *Store) Products() port.ProductRepository {
	return &productRepository{store: s}
}

func (s *Store) Users() port.UserRepository {
	return &userRepository{store: s}
}

func (s *Store) Orders() port.OrderRepository {
	return &orderRepository{store: s}
}

func (s *Store) Transactor() port.Transactor {
	return &transactor{store: s}
}

func (s *Store) Ping(context.Context) error {
	return nil
}

// access runs fn against tx when bound to a transaction, otherwise under the store lock.
func (s *Store) access(tx *state, fn func(st *state) error) error {
	if tx != nil {
		return fn(tx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

type transactor struct {
	store *Store
}

// WithinTx holds the store lock for the whole callback and restores the
// previous state when fn fails.
func (t *transactor) WithinTx(ctx context.Context, fn func(ctx context.Context, repos port.TxRepositories) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	snapshot := t.store.state.clone()

	repos := port.TxRepositories{
		Products: &productRepository{store: t.store, tx: t.store.state},
		Users:    &userRepository{store: t.store, tx: t.store.state},
		Orders:   &orderRepository{store: t.store, tx: t.store.state},
	}

	if err := fn(ctx, repos); err != nil {
		t.store.state = snapshot
		return err
	}

	return nil
}

func (st *state) clone() *state {
	c := &state{
		products: make([]domain.Product, 0, len(st.products)),
		users:    make(map[uuid.UUID]domain.User, len(st.users)),
		orders:   make([]domain.Order, 0, len(st.orders)),
	}
	for _, p := range st.products {
		c.products = append(c.products, cloneProduct(p))
	}
	for id, u := range st.users {
		c.users[id] = cloneUser(u)
	}
	for _, o := range st.orders {
		c.orders = append(c.orders, cloneOrder(o))
	}
	return c
}

func cloneSize(size *string) *string {
	if size == nil {
		return nil
	}
	s := *size
	return &s
}

func cloneProduct(p domain.Product) domain.Product {
	if p.OriginalPrice != nil {
		original := *p.OriginalPrice
		p.OriginalPrice = &original
	}
	if p.Sizes != nil {
		p.Sizes = append([]string(nil), p.Sizes...)
	}
	return p
}

func cloneUser(u domain.User) domain.User {
	if u.Addresses != nil {
		u.Addresses = append([]domain.Address(nil), u.Addresses...)
	}
	if u.OrderIDs != nil {
		u.OrderIDs = append([]uuid.UUID(nil), u.OrderIDs...)
	}

	if u.Cart.Items != nil {
		items := make([]domain.CartItem, 0, len(u.Cart.Items))
		for _, item := range u.Cart.Items {
			item.Size = cloneSize(item.Size)
			items = append(items, item)
		}
		u.Cart.Items = items
	}

	if u.Wishlist.Items != nil {
		items := make([]domain.WishlistItem, 0, len(u.Wishlist.Items))
		for _, item := range u.Wishlist.Items {
			item.Size = cloneSize(item.Size)
			items = append(items, item)
		}
		u.Wishlist.Items = items
	}

	return u
}

func cloneOrder(o domain.Order) domain.Order {
	items := make([]domain.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		item.Size = cloneSize(item.Size)
		items = append(items, item)
	}
	o.Items = items
	return o
}
