package actions

import (
	"context"

	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/ledger"
	"github.com/carson-networks/budget-allocator/internal/storage"
)

// UpdateBudgets merges new limits into the stored budget map.
// Result holds the map as it was written.
type UpdateBudgets struct {
	Updates amount.Map
	Result  amount.Map
	IAction
}

func (a *UpdateBudgets) Perform(ctx context.Context, writer *storage.Writer) error {
	budgets, err := CurrentBudgets(ctx, writer.Budgets)
	if err != nil {
		return err
	}

	merged := ledger.MergeBudgets(budgets, a.Updates)
	if err := writer.Budgets.Upsert(ctx, merged); err != nil {
		return err
	}
	a.Result = merged
	return nil
}

// AddBudgetCategory registers a custom category with no limit yet.
type AddBudgetCategory struct {
	Name   string
	Result amount.Map
	IAction
}

func (a *AddBudgetCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	budgets, err := CurrentBudgets(ctx, writer.Budgets)
	if err != nil {
		return err
	}

	budgets, err = ledger.AddCategory(budgets, a.Name)
	if err != nil {
		return err
	}
	if err := writer.Budgets.Upsert(ctx, budgets); err != nil {
		return err
	}
	a.Result = budgets
	return nil
}
