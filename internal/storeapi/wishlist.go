package storeapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/webserver"
)

type toggleWishlistRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Action    string  `json:"action" validate:"required"`
	Size      *string `json:"size"`
}

func (h *Handler) viewWishlist(c echo.Context) error {
	lines, err := h.svc.Wishlist.View(c.Request().Context(), webserver.UserID(c))
	if err != nil {
		return fmt.Errorf("wishlist.View: %w", err)
	}

	return wishlistResponse(c, lines)
}

func (h *Handler) toggleWishlist(c echo.Context) error {
	var req toggleWishlistRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	productID, err := parseProductID(req.ProductID)
	if err != nil {
		return err
	}

	action, err := domain.ParseWishlistAction(req.Action)
	if err != nil {
		return err
	}

	lines, err := h.svc.Wishlist.Toggle(c.Request().Context(), webserver.UserID(c), productID, action, req.Size)
	if err != nil {
		return fmt.Errorf("wishlist.Toggle: %w", err)
	}

	return wishlistResponse(c, lines)
}

func (h *Handler) clearWishlist(c echo.Context) error {
	lines, err := h.svc.Wishlist.Clear(c.Request().Context(), webserver.UserID(c))
	if err != nil {
		return fmt.Errorf("wishlist.Clear: %w", err)
	}

	return wishlistResponse(c, lines)
}

func wishlistResponse(c echo.Context, lines []domain.WishlistLine) error {
	return c.JSON(http.StatusOK, map[string]any{"wishlist": toWishlistDTO(lines)})
}
