package actions

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/currency"
	"github.com/carson-networks/budget-allocator/internal/ledger"
	"github.com/carson-networks/budget-allocator/internal/savings"
	"github.com/carson-networks/budget-allocator/internal/storage"
	"github.com/carson-networks/budget-allocator/internal/storage/sqlconfig"
)

type testTables struct {
	transactions *sqlconfig.MockITransactionTable
	budgets      *sqlconfig.MockIBudgetTable
	allocations  *sqlconfig.MockIAllocationTable
	planned      *sqlconfig.MockIPlannedSavingsTable
	settings     *sqlconfig.MockISettingsTable
}

func newTestWriter(t *testing.T) (*storage.Writer, testTables) {
	t.Helper()
	tables := testTables{
		transactions: sqlconfig.NewMockITransactionTable(t),
		budgets:      sqlconfig.NewMockIBudgetTable(t),
		allocations:  sqlconfig.NewMockIAllocationTable(t),
		planned:      sqlconfig.NewMockIPlannedSavingsTable(t),
		settings:     sqlconfig.NewMockISettingsTable(t),
	}
	writer := storage.NewWriter(nil, storage.Tables{
		Transactions: tables.transactions,
		Budgets:      tables.budgets,
		Allocations:  tables.allocations,
		Planned:      tables.planned,
		Settings:     tables.settings,
	})
	return writer, tables
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func incomeTx(amt string) ledger.Transaction {
	return ledger.Transaction{
		ID:       uuid.Must(uuid.NewV7()),
		Type:     ledger.TypeIncome,
		Amount:   d(amt),
		Category: "Salary",
		Title:    "June salary",
		Date:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

// -- transactions --

func TestAddTransaction_Inserts(t *testing.T) {
	writer, tables := newTestWriter(t)
	tx := incomeTx("1000")

	tables.transactions.EXPECT().Insert(mock.Anything, tx).Return(nil)

	err := (&AddTransaction{Transaction: tx}).Perform(context.Background(), writer)

	assert.NoError(t, err)
}

func TestAddTransaction_InvalidIsNotStored(t *testing.T) {
	writer, tables := newTestWriter(t)
	tx := incomeTx("1000")
	tx.Amount = decimal.Zero

	err := (&AddTransaction{Transaction: tx}).Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ledger.ErrInvalidTransaction)
	tables.transactions.AssertNotCalled(t, "Insert")
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	writer, tables := newTestWriter(t)
	id := uuid.Must(uuid.NewV7())

	tables.transactions.EXPECT().Delete(mock.Anything, id).
		Return(fmt.Errorf("transaction %s: %w", id, sqlconfig.ErrNotFound))

	err := (&DeleteTransaction{ID: id}).Perform(context.Background(), writer)

	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
}

// -- budgets --

func TestUpdateBudgets_StartsFromDefaults(t *testing.T) {
	writer, tables := newTestWriter(t)

	tables.budgets.EXPECT().List(mock.Anything).Return(nil, nil)
	tables.budgets.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(m amount.Map) bool {
		return len(m) == len(ledger.DefaultBudgets())+1 &&
			m.At("Food").Equal(d("300")) &&
			m.At("Pets").Equal(d("40"))
	})).Return(nil)

	action := &UpdateBudgets{Updates: amount.FromPairs("Food", "300", "Pets", "40")}
	err := action.Perform(context.Background(), writer)

	require.NoError(t, err)
	assert.Equal(t, "Food", action.Result.Keys()[0])
	assert.Equal(t, "Pets", action.Result.Keys()[len(action.Result)-1])
}

func TestUpdateBudgets_StorageError(t *testing.T) {
	writer, tables := newTestWriter(t)

	tables.budgets.EXPECT().List(mock.Anything).Return(nil, errors.New("connection refused"))

	err := (&UpdateBudgets{Updates: amount.FromPairs("Food", "1")}).Perform(context.Background(), writer)

	assert.EqualError(t, err, "connection refused")
	tables.budgets.AssertNotCalled(t, "Upsert")
}

func TestAddBudgetCategory_Duplicate(t *testing.T) {
	writer, tables := newTestWriter(t)

	tables.budgets.EXPECT().List(mock.Anything).Return(amount.FromPairs("Food", "100"), nil)

	err := (&AddBudgetCategory{Name: "Food"}).Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ledger.ErrCategoryExists)
	tables.budgets.AssertNotCalled(t, "Upsert")
}

// -- savings --

func TestAllocateSavings_AccumulatesPlanned(t *testing.T) {
	writer, tables := newTestWriter(t)
	income := incomeTx("1000")
	on := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	tables.transactions.EXPECT().FindByID(mock.Anything, income.ID).Return(&income, nil)
	tables.allocations.EXPECT().List(mock.Anything).Return(nil, nil)
	tables.allocations.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(ev savings.Event) bool {
		return ev.IncomeTransactionID == income.ID &&
			ev.SavingsAmount.Equal(d("500")) &&
			ev.AllocationAmounts.At("stocks").Equal(d("100"))
	})).Return(nil)
	tables.planned.EXPECT().List(mock.Anything).Return(amount.FromPairs("Stocks", "100"), nil)
	tables.planned.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(m amount.Map) bool {
		return m.At("Stocks").Equal(d("200"))
	})).Return(nil)

	action := &AllocateSavings{
		IncomeID:       income.ID,
		Percentages:    amount.FromPairs("stocks", "20", "gold", "80"),
		SavingsPercent: d("50"),
		On:             on,
	}
	err := action.Perform(context.Background(), writer)

	require.NoError(t, err)
	assert.True(t, action.Planned.At("Gold").Equal(d("400")))
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), action.Event.Date)
}

func TestAllocateSavings_AlreadyAllocated(t *testing.T) {
	writer, tables := newTestWriter(t)
	income := incomeTx("1000")

	tables.transactions.EXPECT().FindByID(mock.Anything, income.ID).Return(&income, nil)
	tables.allocations.EXPECT().List(mock.Anything).
		Return([]savings.Event{{IncomeTransactionID: income.ID}}, nil)

	action := &AllocateSavings{
		IncomeID:       income.ID,
		Percentages:    savings.DefaultAllocation(),
		SavingsPercent: d("50"),
		On:             time.Now(),
	}
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, savings.ErrAlreadyAllocated)
	tables.allocations.AssertNotCalled(t, "Insert")
	tables.planned.AssertNotCalled(t, "Upsert")
}

func TestAllocateSavings_NotIncome(t *testing.T) {
	writer, tables := newTestWriter(t)
	expense := incomeTx("10")
	expense.Type = ledger.TypeExpense

	tables.transactions.EXPECT().FindByID(mock.Anything, expense.ID).Return(&expense, nil)
	tables.allocations.EXPECT().List(mock.Anything).Return(nil, nil)

	err := (&AllocateSavings{IncomeID: expense.ID, SavingsPercent: d("50")}).Perform(context.Background(), writer)

	assert.ErrorIs(t, err, savings.ErrNotIncome)
}

func TestSetPlannedSavings_Overwrites(t *testing.T) {
	writer, tables := newTestWriter(t)

	tables.planned.EXPECT().List(mock.Anything).Return(amount.FromPairs("Stocks", "200"), nil)
	tables.planned.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(m amount.Map) bool {
		return m.At("Stocks").Equal(d("75.5"))
	})).Return(nil)

	action := &SetPlannedSavings{Category: "Stocks", Amount: d("75.5")}

	assert.NoError(t, action.Perform(context.Background(), writer))
}

func TestAddSavingsType(t *testing.T) {
	writer, tables := newTestWriter(t)

	tables.planned.EXPECT().List(mock.Anything).Return(amount.FromPairs("Stocks", "10"), nil)
	tables.planned.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(m amount.Map) bool {
		return m.Has("Art") && m.At("Art").IsZero()
	})).Return(nil)

	action := &AddSavingsType{Name: " Art "}

	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, []string{"Stocks", "Art"}, action.Result.Keys())
}

func TestAddSavingsType_FixedNameRejected(t *testing.T) {
	writer, tables := newTestWriter(t)

	tables.planned.EXPECT().List(mock.Anything).Return(nil, nil)

	err := (&AddSavingsType{Name: "Gold"}).Perform(context.Background(), writer)

	assert.ErrorIs(t, err, savings.ErrTypeExists)
}

func TestAutoAllocatePlanned(t *testing.T) {
	writer, tables := newTestWriter(t)

	tables.transactions.EXPECT().List(mock.Anything).Return([]ledger.Transaction{incomeTx("4000")}, nil)
	tables.planned.EXPECT().List(mock.Anything).Return(nil, nil)
	tables.planned.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(m amount.Map) bool {
		return len(m) == len(savings.Categories) && m.At("Vacation").Equal(d("100"))
	})).Return(nil)

	action := &AutoAllocatePlanned{}

	require.NoError(t, action.Perform(context.Background(), writer))
	assert.True(t, action.Result.Sum().Equal(d("2000")))
}

// -- settings --

func TestSetCurrency(t *testing.T) {
	writer, tables := newTestWriter(t)

	tables.settings.EXPECT().Set(mock.Anything, sqlconfig.SettingCurrency, "EUR").Return(nil)

	action := &SetCurrency{Code: "eur"}

	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, "EUR", action.Result)
}

func TestSetCurrency_Unknown(t *testing.T) {
	writer, tables := newTestWriter(t)

	err := (&SetCurrency{Code: "DOGE"}).Perform(context.Background(), writer)

	assert.ErrorIs(t, err, currency.ErrUnknownCurrency)
	tables.settings.AssertNotCalled(t, "Set")
}
