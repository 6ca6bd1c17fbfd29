package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

type CatalogService struct {
	products port.ProductRepository
	logger   *zap.Logger
}

func NewCatalog(products port.ProductRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		products: products,
		logger:   logger.Named("catalog"),
	}
}

func (s *CatalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	// unknown categories simply match nothing
	products, err := s.products.ListProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("products.ListProducts: %w", err)
	}

	s.logger.Debug("products listed",
		zap.Int("count", len(products)),
		zap.String("search", filter.Search),
		zap.String("sort", string(filter.Sort)))

	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("products.GetProduct: %w", err)
	}

	return product, nil
}
