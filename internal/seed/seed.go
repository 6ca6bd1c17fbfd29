package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/currency"
)

//go:embed products.json
var defaultCatalog []byte

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type productRecord struct {
	ID            *uuid.UUID       `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	InStock       bool             `json:"inStock"`
	Category      string           `json:"category"`
	Image         string           `json:"image"`
	Rating        float64          `json:"rating"`
	Sizes         []string         `json:"sizes"`
}

// DefaultProducts decodes the catalog bundled with the binary.
func DefaultProducts(unit currency.Unit) ([]domain.Product, error) {
	return ReadProducts(bytes.NewReader(defaultCatalog), unit)
}

func LoadProductsFile(path string, unit currency.Unit) ([]domain.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	return ReadProducts(f, unit)
}

// ReadProducts decodes a JSON array of products priced in unit. Every record
// is validated; records without an id get one at insert time.
func ReadProducts(r io.Reader, unit currency.Unit) ([]domain.Product, error) {
	var records []productRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode products: %v", domain.ErrInvalidArgument, err)
	}

	products := make([]domain.Product, 0, len(records))
	for i, rec := range records {
		p := domain.Product{
			Name:        strings.TrimSpace(rec.Name),
			Description: rec.Description,
			Price:       domain.Money{Amount: rec.Price, Currency: unit},
			InStock:     rec.InStock,
			Category:    domain.Category(rec.Category),
			ImageURL:    rec.Image,
			Rating:      rec.Rating,
			Sizes:       rec.Sizes,
		}
		if rec.ID != nil {
			p.ID = *rec.ID
		}
		if rec.OriginalPrice != nil {
			p.OriginalPrice = &domain.Money{Amount: *rec.OriginalPrice, Currency: unit}
		}

		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("record[%d]: %w", i, err)
		}
		products = append(products, p)
	}

	return products, nil
}

// Products writes products to the catalog. With replace the existing catalog
// is dropped first; otherwise products are appended.
func Products(ctx context.Context, repo port.ProductRepository, products []domain.Product, replace bool) (int, error) {
	if replace {
		n, err := repo.ReplaceProducts(ctx, products)
		if err != nil {
			return 0, fmt.Errorf("repo.ReplaceProducts: %w", err)
		}
		return n, nil
	}

	n, err := repo.InsertProducts(ctx, products)
	if err != nil {
		return 0, fmt.Errorf("repo.InsertProducts: %w", err)
	}
	return n, nil
}

// EnsureDemoUser creates the configured demo account unless it exists.
func EnsureDemoUser(ctx context.Context, users port.UserRepository, cfg config.StoreConfig, logger *zap.Logger) (domain.User, error) {
	user, err := users.GetUser(ctx, cfg.DemoUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, fmt.Errorf("users.GetUser: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}

	user, err = users.CreateUser(ctx, domain.User{
		ID:           cfg.DemoUserID,
		Name:         cfg.DemoName,
		Email:        cfg.DemoEmail,
		PasswordHash: string(hash),
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("users.CreateUser: %w", err)
	}

	logger.Info("demo user created", zap.Stringer("userID", user.ID), zap.String("email", user.Email))

	return user, nil
}
