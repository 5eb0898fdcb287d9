package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/ledger"
	"github.com/carson-networks/budget-allocator/internal/savings"
)

// IAllocationTable defines the interface for savings allocation event storage.
// Events are append-only.
//
//go:generate mockery --name IAllocationTable --output mock_IAllocationTable.go
type IAllocationTable interface {
	Insert(ctx context.Context, event savings.Event) error
	List(ctx context.Context) ([]savings.Event, error)
}

var _ IAllocationTable = (*AllocationsTable)(nil)

// AllocationsTable provides access to the savings_allocations table.
type AllocationsTable struct {
	exec bob.Executor
}

func NewAllocationsTable(exec bob.Executor) *AllocationsTable {
	return &AllocationsTable{exec: exec}
}

type allocationRow struct {
	ID                  uuid.UUID       `db:"id"`
	IncomeTransactionID uuid.UUID       `db:"income_transaction_id"`
	AllocationDate      time.Time       `db:"allocation_date"`
	IncomeAmount        decimal.Decimal `db:"income_amount"`
	SavingsPercentage   decimal.Decimal `db:"savings_percentage"`
	SavingsAmount       decimal.Decimal `db:"savings_amount"`
	Allocations         amount.Map      `db:"allocations"`
	AllocationAmounts   amount.Map      `db:"allocation_amounts"`
}

// Insert appends an event. The unique index on income_transaction_id backs
// the one-event-per-income rule.
func (t *AllocationsTable) Insert(ctx context.Context, ev savings.Event) error {
	q := psql.Insert(
		im.Into(savingsAllocationsTable,
			"id", "income_transaction_id", "allocation_date", "income_amount",
			"savings_percentage", "savings_amount", "allocations", "allocation_amounts",
		),
		im.Values(psql.Arg(
			ev.ID, ev.IncomeTransactionID, ledger.CalendarDate(ev.Date), ev.IncomeAmount,
			ev.SavingsPercentage, ev.SavingsAmount, ev.Allocations, ev.AllocationAmounts,
		)),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// List returns every event, oldest first.
func (t *AllocationsTable) List(ctx context.Context) ([]savings.Event, error) {
	q := psql.Select(
		sm.Columns(
			"id", "income_transaction_id", "allocation_date", "income_amount",
			"savings_percentage", "savings_amount", "allocations", "allocation_amounts",
		),
		sm.From(savingsAllocationsTable),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[allocationRow]())
	if err != nil {
		return nil, err
	}
	result := make([]savings.Event, len(rows))
	for i, row := range rows {
		result[i] = savings.Event{
			ID:                  row.ID,
			Date:                ledger.CalendarDate(row.AllocationDate),
			IncomeTransactionID: row.IncomeTransactionID,
			IncomeAmount:        row.IncomeAmount,
			SavingsPercentage:   row.SavingsPercentage,
			SavingsAmount:       row.SavingsAmount,
			Allocations:         row.Allocations,
			AllocationAmounts:   row.AllocationAmounts,
		}
	}
	return result, nil
}
