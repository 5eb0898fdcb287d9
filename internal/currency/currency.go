// Package currency validates the display currency and renders amounts in it.
package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Default is used until the user picks a currency.
const Default = "USD"

var ErrUnknownCurrency = errors.New("unknown currency")

// Supported lists the currencies a user may choose from.
var Supported = []string{
	"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "CHF", "CNY", "INR", "BRL",
	"MXN", "SGD", "HKD", "NOK", "SEK", "KRW", "TRY", "RUB", "ZAR", "PLN",
}

// Normalize upper-cases code and checks it is supported.
func Normalize(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range Supported {
		if c == code && money.GetCurrency(code) != nil {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
}

// Format renders a major-unit amount with the currency's symbol and separators.
// Amounts are rounded to the currency's minor unit; unknown codes fall back to
// Default.
func Format(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		code = Default
		cur = money.GetCurrency(code)
	}

	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), code).Display()
}
