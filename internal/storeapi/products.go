package storeapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/spf13/cast"
)

func (h *Handler) listProducts(c echo.Context) error {
	filter, err := parseProductFilter(c)
	if err != nil {
		return err
	}

	products, err := h.svc.Catalog.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return fmt.Errorf("catalog.ListProducts: %w", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"products": toProductDTOs(products)})
}

func (h *Handler) getProduct(c echo.Context) error {
	productID, err := parseID(c.Param("id"), "product", domain.ErrNotFound)
	if err != nil {
		return err
	}

	product, err := h.svc.Catalog.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return fmt.Errorf("catalog.GetProduct: %w", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"product": toProductDTO(product)})
}

func parseProductFilter(c echo.Context) (domain.ProductFilter, error) {
	filter := domain.ProductFilter{
		Categories: domain.ParseCategories(c.QueryParam("category")),
		Search:     strings.TrimSpace(c.QueryParam("q")),
		Sort:       domain.ParseProductSort(c.QueryParam("sort")),
	}

	if raw := strings.TrimSpace(c.QueryParam("rating")); raw != "" {
		rating, err := cast.ToFloat64E(raw)
		if err != nil {
			return domain.ProductFilter{}, fmt.Errorf("%w: rating[%s] is not a number", domain.ErrInvalidArgument, raw)
		}
		filter.MinRating = &rating
	}

	return filter, nil
}
