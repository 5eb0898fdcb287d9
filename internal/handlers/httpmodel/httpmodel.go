// Package httpmodel holds the request and response shapes shared by the v1
// handlers. Amounts cross the wire as decimal strings and maps as ordered
// arrays so category order survives JSON.
package httpmodel

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/currency"
	"github.com/carson-networks/budget-allocator/internal/ledger"
	"github.com/carson-networks/budget-allocator/internal/savings"
	"github.com/carson-networks/budget-allocator/internal/service"
	"github.com/carson-networks/budget-allocator/internal/storage/sqlconfig"
)

// DateLayout is the calendar date format used in requests and responses.
const DateLayout = time.DateOnly

// AmountInput is one category and amount in a request.
type AmountInput struct {
	Key    string `json:"key" minLength:"1" doc:"Category key or name"`
	Amount string `json:"amount" doc:"Decimal amount"`
}

// AmountEntry is one category and amount in a response.
type AmountEntry struct {
	Key     string `json:"key" doc:"Category key or name"`
	Amount  string `json:"amount" doc:"Decimal amount"`
	Display string `json:"display,omitempty" doc:"Amount formatted in the display currency"`
}

// ParseAmount parses a decimal string, answering 400 on failure.
func ParseAmount(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return d, nil
}

// ToMap converts request entries into an ordered map.
func ToMap(field string, entries []AmountInput) (amount.Map, error) {
	m := make(amount.Map, 0, len(entries))
	for _, e := range entries {
		d, err := ParseAmount(field, e.Amount)
		if err != nil {
			return nil, err
		}
		m = m.With(e.Key, d)
	}
	return m, nil
}

// FromMap converts an ordered map for a response. Display is filled when code
// is not empty.
func FromMap(m amount.Map, code string) []AmountEntry {
	out := make([]AmountEntry, len(m))
	for i, e := range m {
		out[i] = AmountEntry{Key: e.Key, Amount: e.Value.StringFixed(2)}
		if code != "" {
			out[i].Display = currency.Format(e.Value, code)
		}
	}
	return out
}

// Money renders an amount as a fixed two-decimal string.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Error maps a service error onto an HTTP error. Anything unrecognised is a
// 500 carrying msg.
func Error(msg string, err error) error {
	switch {
	case errors.Is(err, sqlconfig.ErrNotFound):
		return huma.NewError(http.StatusNotFound, msg, err)
	case errors.Is(err, ledger.ErrCategoryExists),
		errors.Is(err, savings.ErrTypeExists),
		errors.Is(err, savings.ErrAlreadyAllocated):
		return huma.NewError(http.StatusConflict, msg, err)
	case errors.Is(err, ledger.ErrInvalidTransaction),
		errors.Is(err, ledger.ErrEmptyCategory),
		errors.Is(err, savings.ErrEmptyType),
		errors.Is(err, savings.ErrNotIncome),
		errors.Is(err, currency.ErrUnknownCurrency),
		errors.Is(err, service.ErrEmptyKey):
		return huma.NewError(http.StatusBadRequest, msg, err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return huma.NewError(http.StatusServiceUnavailable, msg, err)
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}
