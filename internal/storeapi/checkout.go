package storeapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/webserver"
	"github.com/shopspring/decimal"
)

type checkoutRequest struct {
	SelectedAddressID string   `json:"selectedAddressId" validate:"required"`
	TotalAmount       *float64 `json:"totalAmount" validate:"required,gte=0,lte=9999999999.99"`
}

type checkoutResponse struct {
	OrderID string `json:"orderId"`
	Success bool   `json:"success"`
}

func (h *Handler) checkout(c echo.Context) error {
	var req checkoutRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	addressID, err := parseID(req.SelectedAddressID, "selectedAddressId", domain.ErrInvalidArgument)
	if err != nil {
		return err
	}

	total := decimal.NewFromFloat(*req.TotalAmount).Round(2)

	orderID, err := h.svc.Checkout.Checkout(c.Request().Context(), webserver.UserID(c), addressID, total)
	if err != nil {
		return fmt.Errorf("checkout.Checkout: %w", err)
	}

	return c.JSON(http.StatusCreated, checkoutResponse{OrderID: orderID.String(), Success: true})
}
