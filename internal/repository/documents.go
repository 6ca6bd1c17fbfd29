package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONB document shapes embedded in the users and orders rows.

type addressDoc struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zip       string    `json:"zip"`
	Phone     string    `json:"phone"`
	IsDefault bool      `json:"isDefault"`
}

type cartItemDoc struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	Size      *string   `json:"size"`
	AddedAt   time.Time `json:"addedAt"`
}

type wishlistItemDoc struct {
	ProductID uuid.UUID `json:"productId"`
	Size      *string   `json:"size"`
	AddedAt   time.Time `json:"addedAt"`
}

type orderItemDoc struct {
	ProductID     uuid.UUID       `json:"productId"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	PriceAmount   decimal.Decimal `json:"priceAmount"`
	PriceCurrency string          `json:"priceCurrency"`
	Size          *string         `json:"size"`
}

func toAddressDoc(a domain.Address) addressDoc {
	return addressDoc{
		ID:        a.ID,
		FullName:  a.FullName,
		Street:    a.Street,
		City:      a.City,
		State:     a.State,
		Zip:       a.Zip,
		Phone:     a.Phone,
		IsDefault: a.IsDefault,
	}
}

func (d addressDoc) toDomain() domain.Address {
	return domain.Address{
		ID:        d.ID,
		FullName:  d.FullName,
		Street:    d.Street,
		City:      d.City,
		State:     d.State,
		Zip:       d.Zip,
		Phone:     d.Phone,
		IsDefault: d.IsDefault,
	}
}

func marshalAddresses(addresses []domain.Address) ([]byte, error) {
	docs := make([]addressDoc, 0, len(addresses))
	for _, a := range addresses {
		docs = append(docs, toAddressDoc(a))
	}
	return json.Marshal(docs)
}

func unmarshalAddresses(raw []byte) ([]domain.Address, error) {
	var docs []addressDoc
	if err := unmarshalDoc(raw, &docs); err != nil {
		return nil, err
	}

	var addresses []domain.Address
	for _, d := range docs {
		addresses = append(addresses, d.toDomain())
	}
	return addresses, nil
}

func marshalCart(items []domain.CartItem) ([]byte, error) {
	docs := make([]cartItemDoc, 0, len(items))
	for _, item := range items {
		docs = append(docs, cartItemDoc{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
			AddedAt:   item.AddedAt,
		})
	}
	return json.Marshal(docs)
}

func unmarshalCart(raw []byte) ([]domain.CartItem, error) {
	var docs []cartItemDoc
	if err := unmarshalDoc(raw, &docs); err != nil {
		return nil, err
	}

	var items []domain.CartItem
	for _, d := range docs {
		items = append(items, domain.CartItem{
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			Size:      d.Size,
			AddedAt:   d.AddedAt,
		})
	}
	return items, nil
}

func marshalWishlist(items []domain.WishlistItem) ([]byte, error) {
	docs := make([]wishlistItemDoc, 0, len(items))
	for _, item := range items {
		docs = append(docs, wishlistItemDoc{
			ProductID: item.ProductID,
			Size:      item.Size,
			AddedAt:   item.AddedAt,
		})
	}
	return json.Marshal(docs)
}

func unmarshalWishlist(raw []byte) ([]domain.WishlistItem, error) {
	var docs []wishlistItemDoc
	if err := unmarshalDoc(raw, &docs); err != nil {
		return nil, err
	}

	var items []domain.WishlistItem
	for _, d := range docs {
		items = append(items, domain.WishlistItem{
			ProductID: d.ProductID,
			Size:      d.Size,
			AddedAt:   d.AddedAt,
		})
	}
	return items, nil
}

func marshalOrderItems(items []domain.OrderItem) ([]byte, error) {
	docs := make([]orderItemDoc, 0, len(items))
	for _, item := range items {
		docs = append(docs, orderItemDoc{
			ProductID:     item.ProductID,
			Name:          item.Name,
			Quantity:      item.Quantity,
			PriceAmount:   item.Price.Amount,
			PriceCurrency: item.Price.Currency.String(),
			Size:          item.Size,
		})
	}
	return json.Marshal(docs)
}

func unmarshalOrderItems(raw []byte) ([]domain.OrderItem, error) {
	var docs []orderItemDoc
	if err := unmarshalDoc(raw, &docs); err != nil {
		return nil, err
	}

	var items []domain.OrderItem
	for _, d := range docs {
		price, err := toMoney(d.PriceAmount, d.PriceCurrency)
		if err != nil {
			return nil, fmt.Errorf("toMoney: %w", err)
		}

		items = append(items, domain.OrderItem{
			ProductID: d.ProductID,
			Name:      d.Name,
			Quantity:  d.Quantity,
			Price:     price,
			Size:      d.Size,
		})
	}
	return items, nil
}

func unmarshalDoc(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}
	return nil
}

func toMoney(amount decimal.Decimal, code string) (domain.Money, error) {
	unit, err := domain.ParseCurrency(code)
	if err != nil {
		return domain.Money{}, err
	}
	return domain.Money{Amount: amount, Currency: unit}, nil
}
