package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type productRepository struct {
	store *Store
	tx    *state
}

func (r *productRepository) ListProducts(_ context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	var result []domain.Product

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	err := r.store.access(r.tx, func(st *state) error {
		for _, p := range st.products {
			if len(filter.Categories) > 0 && !slices.Contains(filter.Categories, p.Category) {
				continue
			}
			if filter.MinRating != nil && p.Rating < *filter.MinRating {
				continue
			}
			if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
				continue
			}
			result = append(result, cloneProduct(p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	switch filter.Sort {
	case domain.SortPriceLowToHigh:
		slices.SortStableFunc(result, func(a, b domain.Product) int {
			return a.Price.Amount.Cmp(b.Price.Amount)
		})
	case domain.SortPriceHighToLow:
		slices.SortStableFunc(result, func(a, b domain.Product) int {
			return cmp.Compare(0, a.Price.Amount.Cmp(b.Price.Amount))
		})
	}

	return result, nil
}

func (r *productRepository) GetProduct(_ context.Context, productID uuid.UUID) (domain.Product, error) {
	if productID == uuid.Nil {
		return domain.Product{}, fmt.Errorf("%w: productID is empty", domain.ErrInvalidArgument)
	}

	var product domain.Product
	err := r.store.access(r.tx, func(st *state) error {
		i := st.productIndex(productID)
		if i < 0 {
			return fmt.Errorf("%w: product[%s]", domain.ErrNotFound, productID)
		}
		product = cloneProduct(st.products[i])
		return nil
	})

	return product, err
}

func (r *productRepository) GetProducts(_ context.Context, productIDs []uuid.UUID) (map[uuid.UUID]domain.Product, error) {
	result := make(map[uuid.UUID]domain.Product, len(productIDs))

	err := r.store.access(r.tx, func(st *state) error {
		for _, id := range productIDs {
			if i := st.productIndex(id); i >= 0 {
				result[id] = cloneProduct(st.products[i])
			}
		}
		return nil
	})

	return result, err
}

func (r *productRepository) ReplaceProducts(_ context.Context, products []domain.Product) (int, error) {
	prepared, err := r.prepare(products)
	if err != nil {
		return 0, err
	}

	err = r.store.access(r.tx, func(st *state) error {
		st.products = prepared
		return nil
	})

	return len(prepared), err
}

func (r *productRepository) InsertProducts(_ context.Context, products []domain.Product) (int, error) {
	prepared, err := r.prepare(products)
	if err != nil {
		return 0, err
	}

	err = r.store.access(r.tx, func(st *state) error {
		for _, p := range prepared {
			if st.productIndex(p.ID) >= 0 {
				return fmt.Errorf("%w: product[%s] already exists", domain.ErrConflict, p.ID)
			}
		}
		st.products = append(st.products, prepared...)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(prepared), nil
}

func (r *productRepository) prepare(products []domain.Product) ([]domain.Product, error) {
	prepared := make([]domain.Product, 0, len(products))
	seen := make(map[uuid.UUID]struct{}, len(products))

	for i, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("products[%d]: %w", i, err)
		}

		p = cloneProduct(p)
		p.Name = strings.TrimSpace(p.Name)
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("%w: product[%s] is duplicated", domain.ErrConflict, p.ID)
		}
		seen[p.ID] = struct{}{}
		p.CreatedAt = r.store.now()

		prepared = append(prepared, p)
	}

	return prepared, nil
}

func (st *state) productIndex(productID uuid.UUID) int {
	return slices.IndexFunc(st.products, func(p domain.Product) bool {
		return p.ID == productID
	})
}
