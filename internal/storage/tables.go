package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-allocator/internal/storage/sqlconfig"
)

// Tables groups one handle per table. Both the pool-backed Storage and a
// transaction-backed Writer carry one.
type Tables struct {
	Transactions sqlconfig.ITransactionTable
	Budgets      sqlconfig.IBudgetTable
	Allocations  sqlconfig.IAllocationTable
	Planned      sqlconfig.IPlannedSavingsTable
	Settings     sqlconfig.ISettingsTable
}

// NewTables binds every table to exec.
func NewTables(exec bob.Executor) Tables {
	return Tables{
		Transactions: sqlconfig.NewTransactionsTable(exec),
		Budgets:      sqlconfig.NewBudgetsTable(exec),
		Allocations:  sqlconfig.NewAllocationsTable(exec),
		Planned:      sqlconfig.NewPlannedSavingsTable(exec),
		Settings:     sqlconfig.NewSettingsTable(exec),
	}
}
