// Package ledger aggregates a flat transaction log into per-category budget
// figures: spending, remaining budget, totals and over-budget state.
package ledger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType tells which bucket a transaction counts towards.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
	TypeSavings TransactionType = "savings"
)

// UncategorizedLabel groups transactions that carry no category.
const UncategorizedLabel = "Uncategorized"

var ErrInvalidTransaction = errors.New("invalid transaction")

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeSavings:
		return true
	}
	return false
}

// Transaction is one immutable entry of the log.
type Transaction struct {
	ID       uuid.UUID
	Type     TransactionType
	Amount   decimal.Decimal
	Category string
	Date     time.Time
	Title    string
}

// Validate checks the fields a transaction needs before it enters the log.
func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, t.Type)
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidTransaction)
	}
	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("%w: empty category", ErrInvalidTransaction)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidTransaction)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	return nil
}

// CalendarDate truncates t to midnight UTC of its calendar day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Delete returns a new log without the transaction identified by id.
// Unknown ids leave the log as it was.
func Delete(log []Transaction, id uuid.UUID) []Transaction {
	out := make([]Transaction, 0, len(log))
	for _, tx := range log {
		if tx.ID != id {
			out = append(out, tx)
		}
	}
	return out
}

// OfType filters the log down to one transaction type, keeping order.
func OfType(log []Transaction, typ TransactionType) []Transaction {
	var out []Transaction
	for _, tx := range log {
		if tx.Type == typ {
			out = append(out, tx)
		}
	}
	return out
}

// CategoryGroup is a run of transactions sharing a category.
type CategoryGroup struct {
	Category     string
	Transactions []Transaction
}

// GroupByCategory sorts the log newest first and groups it by category.
// Groups appear in the order their newest transaction does.
func GroupByCategory(log []Transaction) []CategoryGroup {
	sorted := make([]Transaction, len(log))
	copy(sorted, log)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	var groups []CategoryGroup
	index := make(map[string]int)
	for _, tx := range sorted {
		category := tx.Category
		if strings.TrimSpace(category) == "" {
			category = UncategorizedLabel
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, CategoryGroup{Category: category})
		}
		groups[i].Transactions = append(groups[i].Transactions, tx)
	}
	return groups
}
