package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/ledger"
	"github.com/carson-networks/budget-allocator/internal/savings"
)

func TestAllocate_Defaults(t *testing.T) {
	env := newTestEnv(t)
	income := newTx(ledger.TypeIncome, "1000", "Salary")
	env.transactions.EXPECT().FindByID(mock.Anything, income.ID).Return(&income, nil)
	env.allocations.EXPECT().List(mock.Anything).Return(nil, nil)
	env.allocations.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	env.planned.EXPECT().List(mock.Anything).Return(nil, nil)
	env.planned.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)

	result, err := env.svc.Savings.Allocate(context.Background(), AllocationRequest{IncomeID: income.ID})

	require.NoError(t, err)
	assert.True(t, result.Balanced)
	assert.True(t, result.Event.SavingsPercentage.Equal(d("50")))
	assert.True(t, result.Event.SavingsAmount.Equal(d("500")))
	assert.True(t, result.Planned.At("Stocks").Equal(d("100")))
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), result.Event.Date)
}

func TestAllocate_UnbalancedStillRecorded(t *testing.T) {
	env := newTestEnv(t)
	income := newTx(ledger.TypeIncome, "1000", "Salary")
	pct := d("10")
	env.transactions.EXPECT().FindByID(mock.Anything, income.ID).Return(&income, nil)
	env.allocations.EXPECT().List(mock.Anything).Return(nil, nil)
	env.allocations.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	env.planned.EXPECT().List(mock.Anything).Return(nil, nil)
	env.planned.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)

	result, err := env.svc.Savings.Allocate(context.Background(), AllocationRequest{
		IncomeID:       income.ID,
		Percentages:    amount.FromPairs("stocks", "30"),
		SavingsPercent: &pct,
	})

	require.NoError(t, err)
	assert.False(t, result.Balanced)
	assert.True(t, result.Event.SavingsAmount.Equal(d("100")))
	assert.True(t, result.Planned.At("Stocks").Equal(d("30")))
}

func TestAllocate_Twice(t *testing.T) {
	env := newTestEnv(t)
	income := newTx(ledger.TypeIncome, "1000", "Salary")
	env.transactions.EXPECT().FindByID(mock.Anything, income.ID).Return(&income, nil)
	env.allocations.EXPECT().List(mock.Anything).Return([]savings.Event{{IncomeTransactionID: income.ID}}, nil)

	_, err := env.svc.Savings.Allocate(context.Background(), AllocationRequest{IncomeID: income.ID})

	assert.ErrorIs(t, err, savings.ErrAlreadyAllocated)
}

func TestSavingsReport(t *testing.T) {
	env := newTestEnv(t)
	log := []ledger.Transaction{
		newTx(ledger.TypeIncome, "1000", "Salary"),
		newTx(ledger.TypeSavings, "80", "Stocks"),
	}
	events := []savings.Event{{SavingsAmount: d("500"), AllocationAmounts: amount.FromPairs("stocks", "490")}}
	env.expectState(log, nil, events, amount.FromPairs("Stocks", "100", "Art", "5"))

	report, err := env.svc.Savings.Report(context.Background())

	require.NoError(t, err)
	require.Len(t, report.Report.Lines, len(savings.Categories)+1)
	assert.Equal(t, "Stocks", report.Report.Lines[0].Type)
	assert.True(t, report.Report.Lines[0].Done.Equal(d("80")))
	assert.Equal(t, "Art", report.Report.Lines[len(report.Report.Lines)-1].Type)
	assert.True(t, report.Totals.TotalSavings.Equal(d("500")))
}

func TestUnallocated(t *testing.T) {
	env := newTestEnv(t)
	done := newTx(ledger.TypeIncome, "1000", "Salary")
	open := newTx(ledger.TypeIncome, "300", "Bonus")
	env.expectState([]ledger.Transaction{done, open}, nil, []savings.Event{{IncomeTransactionID: done.ID}}, nil)

	incomes, err := env.svc.Savings.Unallocated(context.Background())

	require.NoError(t, err)
	require.Len(t, incomes, 1)
	assert.Equal(t, open.ID, incomes[0].ID)
}

func TestSetPlanned(t *testing.T) {
	env := newTestEnv(t)
	env.planned.EXPECT().List(mock.Anything).Return(nil, nil)
	env.planned.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)

	planned, err := env.svc.Savings.SetPlanned(context.Background(), "Gold", d("12.34"))

	require.NoError(t, err)
	assert.True(t, planned.At("Gold").Equal(d("12.34")))
}
