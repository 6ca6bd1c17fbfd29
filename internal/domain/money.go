package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount[%s] is negative", ErrInvalidArgument, amount)
	}

	return Money{Amount: amount, Currency: unit}, nil
}

func ParseCurrency(code string) (currency.Unit, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("%w: currency[%s] is not valid: %v", ErrInvalidArgument, code, err)
	}

	return unit, nil
}
