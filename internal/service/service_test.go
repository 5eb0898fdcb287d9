package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/ledger"
	"github.com/carson-networks/budget-allocator/internal/operator/actions"
	"github.com/carson-networks/budget-allocator/internal/savings"
	"github.com/carson-networks/budget-allocator/internal/storage"
	"github.com/carson-networks/budget-allocator/internal/storage/sqlconfig"
)

var testNow = time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

// syncProcessor performs actions inline against the mocked tables.
type syncProcessor struct {
	tables storage.Tables
}

func (p syncProcessor) Process(ctx context.Context, action actions.IAction) error {
	return action.Perform(ctx, storage.NewWriter(nil, p.tables))
}

type testEnv struct {
	svc          *Service
	transactions *sqlconfig.MockITransactionTable
	budgets      *sqlconfig.MockIBudgetTable
	allocations  *sqlconfig.MockIAllocationTable
	planned      *sqlconfig.MockIPlannedSavingsTable
	settings     *sqlconfig.MockISettingsTable
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		transactions: sqlconfig.NewMockITransactionTable(t),
		budgets:      sqlconfig.NewMockIBudgetTable(t),
		allocations:  sqlconfig.NewMockIAllocationTable(t),
		planned:      sqlconfig.NewMockIPlannedSavingsTable(t),
		settings:     sqlconfig.NewMockISettingsTable(t),
	}
	tables := storage.Tables{
		Transactions: env.transactions,
		Budgets:      env.budgets,
		Allocations:  env.allocations,
		Planned:      env.planned,
		Settings:     env.settings,
	}
	env.svc = NewService(&storage.Storage{Tables: tables}, syncProcessor{tables: tables}, "EUR")
	env.svc.Transaction.now = func() time.Time { return testNow }
	env.svc.Savings.now = func() time.Time { return testNow }
	return env
}

// expectState stubs every read LoadState makes.
func (e *testEnv) expectState(txs []ledger.Transaction, budgets amount.Map, events []savings.Event, planned amount.Map) {
	e.transactions.EXPECT().List(mock.Anything).Return(txs, nil)
	e.budgets.EXPECT().List(mock.Anything).Return(budgets, nil)
	e.allocations.EXPECT().List(mock.Anything).Return(events, nil)
	e.planned.EXPECT().List(mock.Anything).Return(planned, nil)
	e.settings.EXPECT().Get(mock.Anything, sqlconfig.SettingCurrency).Return("", false, nil)
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTx(typ ledger.TransactionType, amt, category string) ledger.Transaction {
	return ledger.Transaction{
		ID:       uuid.Must(uuid.NewV7()),
		Type:     typ,
		Amount:   d(amt),
		Category: category,
		Title:    category,
		Date:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}
