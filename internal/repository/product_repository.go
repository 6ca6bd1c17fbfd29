package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
)

type productRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewProductWithTx(tx pgx.Tx) port.ProductRepository {
	return &productRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *productRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	params := db.ListProductsParams{
		Categories: make([]string, 0, len(filter.Categories)),
		Search:     escapeLike(strings.TrimSpace(filter.Search)),
		Sort:       mapSortToDB(filter.Sort),
	}
	for _, c := range filter.Categories {
		params.Categories = append(params.Categories, string(c))
	}
	if filter.MinRating != nil {
		params.MinRating = *filter.MinRating
	}

	rows, err := r.q.ListProducts(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products, err := mapProductRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapProductRowsToDomain: %w", err)
	}

	return products, nil
}

func (r *productRepository) GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	if productID == uuid.Nil {
		return domain.Product{}, fmt.Errorf("%w: productID is empty", domain.ErrInvalidArgument)
	}

	row, err := r.q.GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, mapError("q.GetProduct", err)
	}

	product, err := mapProductRowToDomain(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapProductRowToDomain: %w", err)
	}

	return product, nil
}

func (r *productRepository) GetProducts(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]domain.Product, error) {
	result := make(map[uuid.UUID]domain.Product, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	rows, err := r.q.GetProducts(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("q.GetProducts: %w", err)
	}

	for _, row := range rows {
		product, err := mapProductRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapProductRowToDomain: %w", err)
		}
		result[product.ID] = product
	}

	return result, nil
}

func (r *productRepository) ReplaceProducts(ctx context.Context, products []domain.Product) (int, error) {
	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (int, error) {
		if _, err := q.DeleteAllProducts(ctx); err != nil {
			return 0, fmt.Errorf("q.DeleteAllProducts: %w", err)
		}
		return insertProducts(ctx, q, products)
	})
}

func (r *productRepository) InsertProducts(ctx context.Context, products []domain.Product) (int, error) {
	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (int, error) {
		return insertProducts(ctx, q, products)
	})
}

func insertProducts(ctx context.Context, q *db.Queries, products []domain.Product) (int, error) {
	for i, p := range products {
		if err := p.Validate(); err != nil {
			return 0, fmt.Errorf("products[%d]: %w", i, err)
		}

		params := mapProductToInsertParams(p)
		if params.ID == uuid.Nil {
			params.ID = uuid.New()
		}

		if err := q.InsertProduct(ctx, params); err != nil {
			return 0, mapError("q.InsertProduct", err)
		}
	}

	return len(products), nil
}

func mapSortToDB(sort domain.ProductSort) string {
	switch sort {
	case domain.SortPriceLowToHigh:
		return "price_asc"
	case domain.SortPriceHighToLow:
		return "price_desc"
	default:
		return ""
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes search match literally inside an ILIKE pattern.
func escapeLike(search string) string {
	return likeEscaper.Replace(search)
}

func mapProductToInsertParams(p domain.Product) db.InsertProductParams {
	params := db.InsertProductParams{
		ID:            p.ID,
		Name:          strings.TrimSpace(p.Name),
		Description:   p.Description,
		PriceAmount:   p.Price.Amount,
		PriceCurrency: p.Price.Currency.String(),
		InStock:       p.InStock,
		Category:      string(p.Category),
		ImageUrl:      p.ImageURL,
		Rating:        p.Rating,
		Sizes:         p.Sizes,
	}
	if params.Sizes == nil {
		params.Sizes = []string{}
	}
	if p.OriginalPrice != nil {
		params.OriginalPriceAmount = decimal.NewNullDecimal(p.OriginalPrice.Amount)
	}
	return params
}

func mapProductRowToDomain(row db.Product) (domain.Product, error) {
	price, err := toMoney(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product[%s]: %w", row.ID, err)
	}

	product := domain.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       price,
		InStock:     row.InStock,
		Category:    domain.Category(row.Category),
		ImageURL:    row.ImageUrl,
		Rating:      row.Rating,
		Sizes:       row.Sizes,
		CreatedAt:   row.CreatedAt,
	}
	if row.OriginalPriceAmount.Valid {
		product.OriginalPrice = &domain.Money{Amount: row.OriginalPriceAmount.Decimal, Currency: price.Currency}
	}

	return product, nil
}

func mapProductRowsToDomain(rows []db.Product) ([]domain.Product, error) {
	var products []domain.Product

	for _, row := range rows {
		product, err := mapProductRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapProductRowToDomain: %w", err)
		}

		products = append(products, product)
	}

	return products, nil
}
