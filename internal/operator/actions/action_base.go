// Package actions holds the write operations the operator applies, each
// inside one database transaction.
package actions

import (
	"context"

	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/ledger"
	"github.com/carson-networks/budget-allocator/internal/storage"
	"github.com/carson-networks/budget-allocator/internal/storage/sqlconfig"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// CurrentBudgets reads the budget map, falling back to the default
// categories before anything has been stored.
func CurrentBudgets(ctx context.Context, table sqlconfig.IBudgetTable) (amount.Map, error) {
	budgets, err := table.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		return ledger.DefaultBudgets(), nil
	}
	return budgets, nil
}
