package sqlconfig

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/budget-allocator/internal/amount"
)

// amountMapTable stores an ordered category→amount map, one row per
// category, with the map order kept in a position column.
type amountMapTable struct {
	exec  bob.Executor
	table string
}

type amountMapRow struct {
	Category string          `db:"category"`
	Amount   decimal.Decimal `db:"amount"`
	Position int             `db:"position"`
}

func (t *amountMapTable) list(ctx context.Context) (amount.Map, error) {
	q := psql.Select(
		sm.Columns("category", "amount", "position"),
		sm.From(t.table),
		sm.OrderBy("position").Asc(),
		sm.OrderBy("category").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[amountMapRow]())
	if err != nil {
		return nil, err
	}
	result := make(amount.Map, len(rows))
	for i, row := range rows {
		result[i] = amount.Entry{Key: row.Category, Value: row.Amount}
	}
	return result, nil
}

// upsert writes every entry of m. Rows for categories missing from m are
// left alone.
func (t *amountMapTable) upsert(ctx context.Context, m amount.Map) error {
	if len(m) == 0 {
		return nil
	}
	mods := []bob.Mod[*dialect.InsertQuery]{
		im.Into(t.table, "category", "amount", "position"),
	}
	for i, e := range m {
		mods = append(mods, im.Values(psql.Arg(e.Key, e.Value, i)))
	}
	mods = append(mods, im.OnConflict("category").DoUpdate(
		im.SetExcluded("amount", "position"),
	))
	_, err := bob.Exec(ctx, t.exec, psql.Insert(mods...))
	return err
}

// IBudgetTable defines the interface for category budget storage operations.
//
//go:generate mockery --name IBudgetTable --output mock_IBudgetTable.go
type IBudgetTable interface {
	List(ctx context.Context) (amount.Map, error)
	Upsert(ctx context.Context, budgets amount.Map) error
}

var _ IBudgetTable = (*BudgetsTable)(nil)

// BudgetsTable provides access to the category_budgets table.
type BudgetsTable struct {
	amountMapTable
}

func NewBudgetsTable(exec bob.Executor) *BudgetsTable {
	return &BudgetsTable{amountMapTable{exec: exec, table: categoryBudgetsTable}}
}

// List returns the budget map in its stored order.
func (t *BudgetsTable) List(ctx context.Context) (amount.Map, error) {
	return t.list(ctx)
}

// Upsert writes every limit in budgets.
func (t *BudgetsTable) Upsert(ctx context.Context, budgets amount.Map) error {
	return t.upsert(ctx, budgets)
}

// IPlannedSavingsTable defines the interface for planned savings storage operations.
//
//go:generate mockery --name IPlannedSavingsTable --output mock_IPlannedSavingsTable.go
type IPlannedSavingsTable interface {
	List(ctx context.Context) (amount.Map, error)
	Upsert(ctx context.Context, planned amount.Map) error
}

var _ IPlannedSavingsTable = (*PlannedSavingsTable)(nil)

// PlannedSavingsTable provides access to the planned_savings table.
type PlannedSavingsTable struct {
	amountMapTable
}

func NewPlannedSavingsTable(exec bob.Executor) *PlannedSavingsTable {
	return &PlannedSavingsTable{amountMapTable{exec: exec, table: plannedSavingsTable}}
}

// List returns the cumulative planned totals keyed by savings display name.
func (t *PlannedSavingsTable) List(ctx context.Context) (amount.Map, error) {
	return t.list(ctx)
}

// Upsert writes every planned total in planned.
func (t *PlannedSavingsTable) Upsert(ctx context.Context, planned amount.Map) error {
	return t.upsert(ctx, planned)
}
