package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryMenClothing   Category = "men-clothing"
	CategoryWomenClothing Category = "women-clothing"
	CategoryJewelery      Category = "jewelery"
	CategoryElectronics   Category = "electronics"
)

var categories = map[Category]struct{}{
	CategoryMenClothing:   {},
	CategoryWomenClothing: {},
	CategoryJewelery:      {},
	CategoryElectronics:   {},
}

func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

const MaxRating = 5.0

type Product struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Price         Money
	OriginalPrice *Money
	InStock       bool
	Category      Category
	ImageURL      string
	Rating        float64
	Sizes         []string

	CreatedAt time.Time
}

func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product name is empty", ErrInvalidArgument)
	}
	if p.Price.Amount.IsNegative() {
		return fmt.Errorf("%w: product[%s] price is negative", ErrInvalidArgument, p.Name)
	}
	if p.OriginalPrice != nil && p.OriginalPrice.Amount.IsNegative() {
		return fmt.Errorf("%w: product[%s] original price is negative", ErrInvalidArgument, p.Name)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("%w: product[%s] category[%s] is not valid", ErrInvalidArgument, p.Name, p.Category)
	}
	if p.Rating < 0 || p.Rating > MaxRating {
		return fmt.Errorf("%w: product[%s] rating[%v] is out of range", ErrInvalidArgument, p.Name, p.Rating)
	}

	return nil
}

type ProductSort string

const (
	SortDefault        ProductSort = ""
	SortPriceLowToHigh ProductSort = "priceLowToHigh"
	SortPriceHighToLow ProductSort = "priceHighToLow"
)

// ProductFilter narrows a catalog listing. Zero value lists everything.
type ProductFilter struct {
	Categories []Category
	MinRating  *float64
	Search     string
	Sort       ProductSort
}

// ParseCategories splits a comma-separated category list, dropping blanks.
func ParseCategories(csv string) []Category {
	var result []Category
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		result = append(result, Category(part))
	}
	return result
}

func ParseProductSort(s string) ProductSort {
	switch ProductSort(s) {
	case SortPriceLowToHigh, SortPriceHighToLow:
		return ProductSort(s)
	default:
		return SortDefault
	}
}
