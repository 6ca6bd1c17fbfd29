package storeapi

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/service"
	"go.uber.org/zap"
)

// Services bundles the use cases the storefront routes dispatch to.
type Services struct {
	Catalog   *service.CatalogService
	Cart      *service.CartService
	Wishlist  *service.WishlistService
	Addresses *service.AddressService
	Profile   *service.ProfileService
	Orders    *service.OrderService
	Checkout  *service.CheckoutService
}

type Handler struct {
	svc    Services
	logger *zap.Logger
}

func NewHandler(svc Services, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger.Named("storeapi")}
}

// Register mounts every storefront route on g. The caller's group carries
// the identity middleware.
func (h *Handler) Register(g *echo.Group) {
	g.GET("/products", h.listProducts)
	g.GET("/products/:id", h.getProduct)

	g.GET("/cart", h.viewCart)
	g.POST("/cart", h.addToCart)
	g.POST("/cart/quantity", h.adjustCartQuantity)
	g.DELETE("/cart/clear", h.clearCart)
	g.DELETE("/cart/:productId", h.removeFromCart)

	g.GET("/wishlist", h.viewWishlist)
	g.POST("/wishlist", h.toggleWishlist)
	g.DELETE("/wishlist", h.clearWishlist)

	g.GET("/user/profile", h.getProfile)
	g.PUT("/user/profile", h.updateProfile)
	g.GET("/user/addresses", h.listAddresses)
	g.POST("/user/addresses", h.createAddress)
	g.PUT("/user/addresses/:id", h.updateAddress)
	g.DELETE("/user/addresses/:id", h.deleteAddress)
	g.GET("/user/orders", h.listOrders)
	g.GET("/user/order/:orderId", h.getOrder)

	g.POST("/checkout", h.checkout)
}

// bindRequest decodes the JSON body into req and runs its validate tags.
func bindRequest(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

// parseID reads an identifier; a malformed one is reported with kind so
// lookups can answer NotFound while payload fields answer InvalidArgument.
func parseID(raw, name string, kind error) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s[%s] is malformed", kind, name, raw)
	}
	return id, nil
}

func parseProductID(raw string) (uuid.UUID, error) {
	return parseID(raw, "productId", domain.ErrInvalidArgument)
}
