package ledger

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-allocator/internal/amount"
)

var (
	ErrCategoryExists = errors.New("category already exists")
	ErrEmptyCategory  = errors.New("category name is empty")
)

// DefaultBudgets is the budget map a new user starts with, every limit at zero.
func DefaultBudgets() amount.Map {
	return amount.FromPairs(
		"Food", "0",
		"Transportation", "0",
		"Housing", "0",
		"Utilities", "0",
		"Entertainment", "0",
		"Healthcare", "0",
		"Shopping", "0",
		"Other", "0",
	)
}

// Totals are the log-wide sums. Savings transactions count towards neither
// income nor expenses; NetBalance additionally takes them off.
type Totals struct {
	Income       decimal.Decimal
	Expenses     decimal.Decimal
	Balance      decimal.Decimal
	SavingsDone  decimal.Decimal
	NetBalance   decimal.Decimal
	PercentSpent decimal.Decimal
}

// CalculateTotals sums the log by transaction type.
func CalculateTotals(log []Transaction) Totals {
	var totals Totals
	for _, tx := range log {
		switch tx.Type {
		case TypeIncome:
			totals.Income = totals.Income.Add(tx.Amount)
		case TypeExpense:
			totals.Expenses = totals.Expenses.Add(tx.Amount)
		case TypeSavings:
			totals.SavingsDone = totals.SavingsDone.Add(tx.Amount)
		}
	}
	totals.Balance = totals.Income.Sub(totals.Expenses)
	totals.NetBalance = totals.Balance.Sub(totals.SavingsDone)
	totals.PercentSpent = amount.Round2(amount.Percent(totals.Expenses.Add(totals.SavingsDone), totals.Income))
	return totals
}

// CategorySpending sums expense amounts for each of categories.
// Categories without expenses map to zero; expenses in other categories are
// not attributed anywhere.
func CategorySpending(log []Transaction, categories []string) amount.Map {
	spending := make(amount.Map, 0, len(categories))
	for _, category := range categories {
		spending = spending.With(category, decimal.Zero)
	}
	for _, tx := range log {
		if tx.Type != TypeExpense || !spending.Has(tx.Category) {
			continue
		}
		spending = spending.Add(tx.Category, tx.Amount)
	}
	return spending
}

// RemainingBudget is budget minus spending per budgeted category.
// Overspent categories come out negative.
func RemainingBudget(budgets, spending amount.Map) amount.Map {
	remaining := make(amount.Map, 0, len(budgets))
	for _, e := range budgets {
		remaining = append(remaining, amount.Entry{Key: e.Key, Value: e.Value.Sub(spending.At(e.Key))})
	}
	return remaining
}

// IsOverBudget reports whether category has spent more than its limit.
func IsOverBudget(budgets, spending amount.Map, category string) bool {
	return spending.At(category).GreaterThan(budgets.At(category))
}

// MergeBudgets applies updates on top of budgets. Categories missing from
// updates keep their limit; nothing is ever removed.
func MergeBudgets(budgets, updates amount.Map) amount.Map {
	cleaned := make(amount.Map, 0, len(updates))
	for _, e := range updates {
		cleaned = append(cleaned, amount.Entry{Key: e.Key, Value: amount.Round2(amount.ToAmount(e.Value))})
	}
	return budgets.Merge(cleaned)
}

// AddCategory registers a custom category with a zero limit.
func AddCategory(budgets amount.Map, name string) (amount.Map, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return budgets, ErrEmptyCategory
	}
	if budgets.Has(name) {
		return budgets, fmt.Errorf("%w: %s", ErrCategoryExists, name)
	}
	return budgets.With(name, decimal.Zero), nil
}

// AllZero reports whether no category has a budget yet.
func AllZero(budgets amount.Map) bool {
	for _, e := range budgets {
		if !e.Value.IsZero() {
			return false
		}
	}
	return true
}

// CategoryProgress is the budget-vs-spend line for one category.
type CategoryProgress struct {
	Category    string
	Spent       decimal.Decimal
	Budget      decimal.Decimal
	Remaining   decimal.Decimal
	PercentUsed decimal.Decimal
	Over        bool
}

// Progress lists categories that have either a budget or some spending,
// highest spend first.
func Progress(budgets, spending amount.Map) []CategoryProgress {
	var lines []CategoryProgress
	for _, e := range spending {
		budget := budgets.At(e.Key)
		if !e.Value.IsPositive() && !budget.IsPositive() {
			continue
		}
		used := decimal.Zero
		if budget.IsPositive() {
			used = decimal.Min(amount.Round2(amount.Percent(e.Value, budget)), amount.Hundred)
		}
		lines = append(lines, CategoryProgress{
			Category:    e.Key,
			Spent:       e.Value,
			Budget:      budget,
			Remaining:   budget.Sub(e.Value),
			PercentUsed: used,
			Over:        e.Value.GreaterThan(budget),
		})
	}
	sort.SliceStable(lines, func(i, j int) bool {
		if !lines[i].Spent.Equal(lines[j].Spent) {
			return lines[i].Spent.GreaterThan(lines[j].Spent)
		}
		return lines[i].Category < lines[j].Category
	})
	return lines
}

// Advisory is a non-blocking warning about a transaction about to be added.
type Advisory string

const (
	AdviseNoIncome Advisory = "no_income"
	AdviseNoBudget Advisory = "no_budget"
	AdviseOverflow Advisory = "over_budget"
)

// Advise returns the warnings a caller may show for tx. Nothing here stops
// the transaction from being recorded.
func Advise(tx Transaction, log []Transaction, budgets amount.Map) []Advisory {
	if tx.Type != TypeExpense {
		return nil
	}
	var advice []Advisory
	if len(OfType(log, TypeIncome)) == 0 {
		advice = append(advice, AdviseNoIncome)
	}
	limit := budgets.At(tx.Category)
	if !limit.IsPositive() {
		return append(advice, AdviseNoBudget)
	}
	spent := CategorySpending(log, []string{tx.Category}).At(tx.Category)
	if spent.Add(tx.Amount).GreaterThan(limit) {
		advice = append(advice, AdviseOverflow)
	}
	return advice
}
