package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the owner document of the addresses, cart, wishlist and order history.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Addresses    []Address
	Cart         Cart
	Wishlist     Wishlist
	OrderIDs     []uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Address struct {
	ID        uuid.UUID
	FullName  string
	Street    string
	City      string
	State     string
	Zip       string
	Phone     string
	IsDefault bool
}

// AddressPatch carries the fields of a partial address update; nil means unchanged.
type AddressPatch struct {
	FullName  *string
	Street    *string
	City      *string
	State     *string
	Zip       *string
	Phone     *string
	IsDefault *bool
}

type ProfilePatch struct {
	Name  *string
	Email *string
}

func (a Address) Validate() error {
	required := map[string]string{
		"fullName": a.FullName,
		"street":   a.Street,
		"city":     a.City,
		"state":    a.State,
		"zip":      a.Zip,
		"phone":    a.Phone,
	}
	for _, field := range []string{"fullName", "street", "city", "state", "zip", "phone"} {
		if strings.TrimSpace(required[field]) == "" {
			return fmt.Errorf("%w: address %s is empty", ErrInvalidArgument, field)
		}
	}
	return nil
}

func (u *User) FindAddress(addressID uuid.UUID) (Address, bool) {
	for _, a := range u.Addresses {
		if a.ID == addressID {
			return a, true
		}
	}
	return Address{}, false
}

func (u *User) AddAddress(a Address) error {
	if a.ID == uuid.Nil {
		return fmt.Errorf("%w: address id is empty", ErrInvalidArgument)
	}
	if err := a.Validate(); err != nil {
		return err
	}

	if a.IsDefault {
		u.clearDefaultAddress()
	}
	u.Addresses = append(u.Addresses, a)
	return nil
}

func (u *User) UpdateAddress(addressID uuid.UUID, patch AddressPatch) error {
	i := u.addressIndex(addressID)
	if i < 0 {
		return fmt.Errorf("%w: address[%s]", ErrNotFound, addressID)
	}

	updated := u.Addresses[i]
	setIfPresent(&updated.FullName, patch.FullName)
	setIfPresent(&updated.Street, patch.Street)
	setIfPresent(&updated.City, patch.City)
	setIfPresent(&updated.State, patch.State)
	setIfPresent(&updated.Zip, patch.Zip)
	setIfPresent(&updated.Phone, patch.Phone)
	if patch.IsDefault != nil {
		updated.IsDefault = *patch.IsDefault
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	if updated.IsDefault {
		u.clearDefaultAddress()
	}
	u.Addresses[i] = updated
	return nil
}

func (u *User) DeleteAddress(addressID uuid.UUID) error {
	i := u.addressIndex(addressID)
	if i < 0 {
		return fmt.Errorf("%w: address[%s]", ErrNotFound, addressID)
	}

	u.Addresses = append(u.Addresses[:i], u.Addresses[i+1:]...)
	return nil
}

func (u *User) ApplyProfile(patch ProfilePatch) error {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return fmt.Errorf("%w: name is empty", ErrInvalidArgument)
		}
		u.Name = name
	}
	if patch.Email != nil {
		email, err := NormalizeEmail(*patch.Email)
		if err != nil {
			return err
		}
		u.Email = email
	}
	return nil
}

func (u *User) addressIndex(addressID uuid.UUID) int {
	for i, a := range u.Addresses {
		if a.ID == addressID {
			return i
		}
	}
	return -1
}

func (u *User) clearDefaultAddress() {
	for i := range u.Addresses {
		u.Addresses[i].IsDefault = false
	}
}

func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%w: email[%s] is not valid", ErrInvalidArgument, email)
	}
	return email, nil
}

func setIfPresent(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
