// Package suggestion proposes category budgets and expense plans from fixed
// ratio tables. Every figure is rounded on its own; totals may drift by cents.
package suggestion

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-allocator/internal/amount"
)

// BudgetShare is the part of the money left after savings that gets budgeted.
var BudgetShare = decimal.RequireFromString("0.5")

// DefaultExpenseRatio applies to categories missing from ExpenseRatios.
var DefaultExpenseRatio = decimal.RequireFromString("0.05")

// BudgetRatios splits the budgeted share across the default categories.
var BudgetRatios = amount.FromPairs(
	"Housing", "0.17",
	"Transportation", "0.10",
	"Food", "0.10",
	"Utilities", "0.08",
	"Entertainment", "0.07",
	"Shopping", "0.10",
	"Healthcare", "0.08",
	"Self Development", "0.05",
	"Provisions", "0.16",
	"Other", "0.09",
)

// ExpenseRatios weights categories when planning how to spend what is left.
var ExpenseRatios = amount.FromPairs(
	"Food", "0.15",
	"Transportation", "0.12",
	"Housing", "0.25",
	"Utilities", "0.08",
	"Entertainment", "0.10",
	"Healthcare", "0.08",
	"Shopping", "0.12",
	"Self Development", "0.05",
	"Provisions", "0.03",
	"Other", "0.02",
)

// RemainingAfterSavings is what income leaves once savings are set aside.
func RemainingAfterSavings(totalIncome, totalSavings decimal.Decimal) decimal.Decimal {
	return totalIncome.Sub(totalSavings)
}

// SuggestBudgetAllocation proposes a limit for each category of BudgetRatios.
func SuggestBudgetAllocation(remainingAfterSavings decimal.Decimal) amount.Map {
	budgeted := remainingAfterSavings.Mul(BudgetShare)
	out := make(amount.Map, 0, len(BudgetRatios))
	for _, r := range BudgetRatios {
		out = append(out, amount.Entry{Key: r.Key, Value: amount.Round2(budgeted.Mul(r.Value))})
	}
	return out
}

// SuggestExpensePlan proposes how much of each category's remaining budget to
// spend. Only categories with money left take part, and no proposal exceeds
// what the category has left.
func SuggestExpensePlan(remaining amount.Map) amount.Map {
	total := decimal.Zero
	for _, e := range remaining {
		if e.Value.IsPositive() {
			total = total.Add(e.Value)
		}
	}

	var out amount.Map
	for _, e := range remaining {
		if !e.Value.IsPositive() {
			continue
		}
		ratio, ok := ExpenseRatios.Get(e.Key)
		if !ok {
			ratio = DefaultExpenseRatio
		}
		out = append(out, amount.Entry{
			Key:   e.Key,
			Value: decimal.Min(amount.Round2(total.Mul(ratio)), e.Value),
		})
	}
	return out
}
