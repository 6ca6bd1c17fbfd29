package storeapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/webserver"
)

type updateProfileRequest struct {
	Name  *string `json:"name" validate:"omitnil,min=1"`
	Email *string `json:"email" validate:"omitnil,email"`
}

type createAddressRequest struct {
	FullName  string `json:"fullName" validate:"required"`
	Street    string `json:"street" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Zip       string `json:"zip" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	IsDefault bool   `json:"isDefault"`
}

type updateAddressRequest struct {
	FullName  *string `json:"fullName"`
	Street    *string `json:"street"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Zip       *string `json:"zip"`
	Phone     *string `json:"phone"`
	IsDefault *bool   `json:"isDefault"`
}

func (h *Handler) getProfile(c echo.Context) error {
	user, err := h.svc.Profile.Get(c.Request().Context(), webserver.UserID(c))
	if err != nil {
		return fmt.Errorf("profile.Get: %w", err)
	}

	return c.JSON(http.StatusOK, toUserDTO(user))
}

func (h *Handler) updateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	user, err := h.svc.Profile.Update(c.Request().Context(), webserver.UserID(c), domain.ProfilePatch{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return fmt.Errorf("profile.Update: %w", err)
	}

	return c.JSON(http.StatusOK, toUserDTO(user))
}

func (h *Handler) listAddresses(c echo.Context) error {
	addresses, err := h.svc.Addresses.List(c.Request().Context(), webserver.UserID(c))
	if err != nil {
		return fmt.Errorf("addresses.List: %w", err)
	}

	return addressesResponse(c, http.StatusOK, addresses)
}

func (h *Handler) createAddress(c echo.Context) error {
	var req createAddressRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	addresses, err := h.svc.Addresses.Create(c.Request().Context(), webserver.UserID(c), domain.Address{
		FullName:  req.FullName,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Phone:     req.Phone,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		return fmt.Errorf("addresses.Create: %w", err)
	}

	return addressesResponse(c, http.StatusCreated, addresses)
}

func (h *Handler) updateAddress(c echo.Context) error {
	addressID, err := parseID(c.Param("id"), "address", domain.ErrNotFound)
	if err != nil {
		return err
	}

	var req updateAddressRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	addresses, err := h.svc.Addresses.Update(c.Request().Context(), webserver.UserID(c), addressID, domain.AddressPatch{
		FullName:  req.FullName,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Phone:     req.Phone,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		return fmt.Errorf("addresses.Update: %w", err)
	}

	return addressesResponse(c, http.StatusOK, addresses)
}

func (h *Handler) deleteAddress(c echo.Context) error {
	addressID, err := parseID(c.Param("id"), "address", domain.ErrNotFound)
	if err != nil {
		return err
	}

	addresses, err := h.svc.Addresses.Delete(c.Request().Context(), webserver.UserID(c), addressID)
	if err != nil {
		return fmt.Errorf("addresses.Delete: %w", err)
	}

	return addressesResponse(c, http.StatusOK, addresses)
}

func (h *Handler) listOrders(c echo.Context) error {
	orders, err := h.svc.Orders.List(c.Request().Context(), webserver.UserID(c))
	if err != nil {
		return fmt.Errorf("orders.List: %w", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"orders": toOrderDTOs(orders)})
}

// getOrder answers 404 for an order that is missing, malformed or owned by someone else.
func (h *Handler) getOrder(c echo.Context) error {
	orderID, err := parseID(c.Param("orderId"), "order", domain.ErrNotFound)
	if err != nil {
		return err
	}

	order, err := h.svc.Orders.Get(c.Request().Context(), webserver.UserID(c), orderID)
	if err != nil {
		return fmt.Errorf("orders.Get: %w", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"order": toOrderDTO(order)})
}

func addressesResponse(c echo.Context, status int, addresses []domain.Address) error {
	return c.JSON(status, map[string]any{"addresses": toAddressDTOs(addresses)})
}
