// Package savings records per-income savings allocations and accumulates
// them into cumulative planned totals per savings category.
package savings

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-allocator/internal/allocation"
	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/ledger"
)

var (
	ErrNotIncome        = errors.New("transaction is not an income")
	ErrAlreadyAllocated = errors.New("income already has a savings allocation")
)

// Event is one savings allocation made against a single income. Events are
// never changed once recorded.
type Event struct {
	ID                  uuid.UUID
	Date                time.Time
	IncomeTransactionID uuid.UUID
	IncomeAmount        decimal.Decimal
	SavingsPercentage   decimal.Decimal
	SavingsAmount       decimal.Decimal
	Allocations         amount.Map
	AllocationAmounts   amount.Map
}

// RecordAllocationEvent builds the event for saving savingsPercent of income,
// split across percentages. The caller appends it to the event log.
//
// Each share and savingsPercent are clamped into [0,100] and the percent is
// rounded to two decimals before the amounts are derived from it. A split that
// does not sum to 100 is accepted and shows up as a gap between total savings
// and total allocated.
func RecordAllocationEvent(
	events []Event,
	income ledger.Transaction,
	percentages amount.Map,
	savingsPercent decimal.Decimal,
	on time.Time,
) (Event, error) {
	if income.Type != ledger.TypeIncome {
		return Event{}, fmt.Errorf("%w: %s is %s", ErrNotIncome, income.ID, income.Type)
	}
	if Status(events, income.ID) == Allocated {
		return Event{}, fmt.Errorf("%w: %s", ErrAlreadyAllocated, income.ID)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return Event{}, fmt.Errorf("failed to generate event id: %w", err)
	}

	pct := amount.Round2(amount.ClampPercent(savingsPercent))
	shares := allocation.Normalize(percentages)
	savingsAmount := amount.Round2(income.Amount.Mul(pct).Div(amount.Hundred))

	return Event{
		ID:                  id,
		Date:                ledger.CalendarDate(on),
		IncomeTransactionID: income.ID,
		IncomeAmount:        income.Amount,
		SavingsPercentage:   pct,
		SavingsAmount:       savingsAmount,
		Allocations:         shares,
		AllocationAmounts:   allocation.Project(savingsAmount, shares),
	}, nil
}

// AccumulatePlanned adds the amounts of event onto the cumulative planned
// totals, keyed by display name. Existing totals are never replaced.
func AccumulatePlanned(planned amount.Map, event Event) amount.Map {
	out := planned.Clone()
	for _, e := range event.AllocationAmounts {
		out = out.Add(DisplayName(e.Key), e.Value)
	}
	return out
}

// OverridePlanned sets the planned total for category by hand.
func OverridePlanned(planned amount.Map, category string, value decimal.Decimal) amount.Map {
	return planned.With(category, amount.Round2(amount.ToAmount(value)))
}

// RealizedSavings sums savings transactions booked under category.
func RealizedSavings(log []ledger.Transaction, category string) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range log {
		if tx.Type == ledger.TypeSavings && tx.Category == category {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// Totals compares what was set aside with what was split across categories.
// The two differ when an event was recorded with an unbalanced split.
type Totals struct {
	TotalSavings   decimal.Decimal
	TotalAllocated decimal.Decimal
}

func CalculateTotals(events []Event) Totals {
	totals := Totals{TotalSavings: decimal.Zero, TotalAllocated: decimal.Zero}
	for _, ev := range events {
		totals.TotalSavings = totals.TotalSavings.Add(ev.SavingsAmount)
		totals.TotalAllocated = totals.TotalAllocated.Add(ev.AllocationAmounts.Sum())
	}
	return totals
}

// IncomeStatus is where an income stands in the allocation lifecycle.
// Allocated is terminal.
type IncomeStatus string

const (
	Unallocated IncomeStatus = "unallocated"
	Allocated   IncomeStatus = "allocated"
)

// Status reports whether any event references incomeID.
func Status(events []Event, incomeID uuid.UUID) IncomeStatus {
	for _, ev := range events {
		if ev.IncomeTransactionID == incomeID {
			return Allocated
		}
	}
	return Unallocated
}

// UnallocatedIncomes lists incomes no event refers to yet, in log order.
// Events pointing at deleted incomes are ignored.
func UnallocatedIncomes(log []ledger.Transaction, events []Event) []ledger.Transaction {
	var out []ledger.Transaction
	for _, tx := range ledger.OfType(log, ledger.TypeIncome) {
		if Status(events, tx.ID) == Unallocated {
			out = append(out, tx)
		}
	}
	return out
}
