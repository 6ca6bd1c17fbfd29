package storeapi

import (
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
)

type productDTO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Currency      string   `json:"currency"`
	InStock       bool     `json:"inStock"`
	Category      string   `json:"category"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	Sizes         []string `json:"sizes"`
}

type cartLineDTO struct {
	Product  productDTO `json:"product"`
	Quantity int        `json:"quantity"`
	Size     *string    `json:"size"`
}

type wishlistLineDTO struct {
	Product productDTO `json:"product"`
	Size    *string    `json:"size"`
}

type addressDTO struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone"`
	IsDefault bool   `json:"isDefault"`
}

type userDTO struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Addresses []addressDTO `json:"addresses"`
	Orders    []string     `json:"orders"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type orderItemDTO struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Size      *string `json:"size"`
}

type orderDTO struct {
	ID              string         `json:"id"`
	Items           []orderItemDTO `json:"items"`
	ShippingAddress addressDTO     `json:"shippingAddress"`
	TotalAmount     float64        `json:"totalAmount"`
	Currency        string         `json:"currency"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`
}

func toProductDTO(p domain.Product) productDTO {
	dto := productDTO{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Amount.InexactFloat64(),
		Currency:    p.Price.Currency.String(),
		InStock:     p.InStock,
		Category:    string(p.Category),
		Image:       p.ImageURL,
		Rating:      p.Rating,
		Sizes:       p.Sizes,
	}
	if p.OriginalPrice != nil {
		original := p.OriginalPrice.Amount.InexactFloat64()
		dto.OriginalPrice = &original
	}
	if dto.Sizes == nil {
		dto.Sizes = []string{}
	}
	return dto
}

func toProductDTOs(products []domain.Product) []productDTO {
	result := make([]productDTO, 0, len(products))
	for _, p := range products {
		result = append(result, toProductDTO(p))
	}
	return result
}

func toCartDTO(lines []domain.CartLine) []cartLineDTO {
	result := make([]cartLineDTO, 0, len(lines))
	for _, line := range lines {
		result = append(result, cartLineDTO{
			Product:  toProductDTO(line.Product),
			Quantity: line.Quantity,
			Size:     line.Size,
		})
	}
	return result
}

func toWishlistDTO(lines []domain.WishlistLine) []wishlistLineDTO {
	result := make([]wishlistLineDTO, 0, len(lines))
	for _, line := range lines {
		result = append(result, wishlistLineDTO{Product: toProductDTO(line.Product), Size: line.Size})
	}
	return result
}

func toAddressDTO(a domain.Address) addressDTO {
	return addressDTO{
		ID:        a.ID.String(),
		FullName:  a.FullName,
		Street:    a.Street,
		City:      a.City,
		State:     a.State,
		Zip:       a.Zip,
		Phone:     a.Phone,
		IsDefault: a.IsDefault,
	}
}

func toAddressDTOs(addresses []domain.Address) []addressDTO {
	result := make([]addressDTO, 0, len(addresses))
	for _, a := range addresses {
		result = append(result, toAddressDTO(a))
	}
	return result
}

// toUserDTO never carries the password hash.
func toUserDTO(u domain.User) userDTO {
	orders := make([]string, 0, len(u.OrderIDs))
	for _, id := range u.OrderIDs {
		orders = append(orders, id.String())
	}

	return userDTO{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Addresses: toAddressDTOs(u.Addresses),
		Orders:    orders,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toOrderDTO(o domain.Order) orderDTO {
	items := make([]orderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemDTO{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price.Amount.InexactFloat64(),
			Size:      item.Size,
		})
	}

	return orderDTO{
		ID:              o.ID.String(),
		Items:           items,
		ShippingAddress: toAddressDTO(o.ShippingAddress),
		TotalAmount:     o.TotalAmount.Amount.InexactFloat64(),
		Currency:        o.TotalAmount.Currency.String(),
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
	}
}

func toOrderDTOs(orders []domain.Order) []orderDTO {
	result := make([]orderDTO, 0, len(orders))
	for _, o := range orders {
		result = append(result, toOrderDTO(o))
	}
	return result
}
