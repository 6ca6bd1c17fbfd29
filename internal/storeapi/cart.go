package storeapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/webserver"
)

type addToCartRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Size      *string `json:"size"`
}

type adjustQuantityRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Action    string  `json:"action" validate:"required"`
	Size      *string `json:"size"`
}

func (h *Handler) viewCart(c echo.Context) error {
	lines, err := h.svc.Cart.View(c.Request().Context(), webserver.UserID(c))
	if err != nil {
		return fmt.Errorf("cart.View: %w", err)
	}

	return cartResponse(c, lines)
}

func (h *Handler) addToCart(c echo.Context) error {
	var req addToCartRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	productID, err := parseProductID(req.ProductID)
	if err != nil {
		return err
	}

	lines, err := h.svc.Cart.Add(c.Request().Context(), webserver.UserID(c), productID, req.Size)
	if err != nil {
		return fmt.Errorf("cart.Add: %w", err)
	}

	return cartResponse(c, lines)
}

func (h *Handler) adjustCartQuantity(c echo.Context) error {
	var req adjustQuantityRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	productID, err := parseProductID(req.ProductID)
	if err != nil {
		return err
	}

	action, err := domain.ParseQuantityAction(req.Action)
	if err != nil {
		return err
	}

	lines, err := h.svc.Cart.AdjustQuantity(c.Request().Context(), webserver.UserID(c), productID, req.Size, action)
	if err != nil {
		return fmt.Errorf("cart.AdjustQuantity: %w", err)
	}

	return cartResponse(c, lines)
}

// removeFromCart drops every line of the product unless a size query
// parameter is present, in which case only that variant goes. An empty
// size targets the line without a variant.
func (h *Handler) removeFromCart(c echo.Context) error {
	productID, err := parseProductID(c.Param("productId"))
	if err != nil {
		return err
	}

	filter := domain.AllVariants()
	if sizes, ok := c.QueryParams()["size"]; ok {
		size := sizes[0]
		filter = domain.OnlyVariant(&size)
	}

	lines, err := h.svc.Cart.Remove(c.Request().Context(), webserver.UserID(c), productID, filter)
	if err != nil {
		return fmt.Errorf("cart.Remove: %w", err)
	}

	return cartResponse(c, lines)
}

func (h *Handler) clearCart(c echo.Context) error {
	lines, err := h.svc.Cart.Clear(c.Request().Context(), webserver.UserID(c))
	if err != nil {
		return fmt.Errorf("cart.Clear: %w", err)
	}

	return cartResponse(c, lines)
}

func cartResponse(c echo.Context, lines []domain.CartLine) error {
	return c.JSON(http.StatusOK, map[string]any{"cart": toCartDTO(lines)})
}
