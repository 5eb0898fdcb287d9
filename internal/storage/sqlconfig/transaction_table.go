package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/budget-allocator/internal/ledger"
)

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error)
	Insert(ctx context.Context, tx ledger.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]ledger.Transaction, error)
}

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

type transactionRow struct {
	ID              uuid.UUID       `db:"id"`
	Type            string          `db:"type"`
	Amount          decimal.Decimal `db:"amount"`
	Category        string          `db:"category"`
	Title           string          `db:"title"`
	TransactionDate time.Time       `db:"transaction_date"`
}

var transactionColumns = []any{"id", "type", "amount", "category", "title", "transaction_date"}

func (r transactionRow) toTransaction() ledger.Transaction {
	return ledger.Transaction{
		ID:       r.ID,
		Type:     ledger.TransactionType(r.Type),
		Amount:   r.Amount,
		Category: r.Category,
		Title:    r.Title,
		Date:     ledger.CalendarDate(r.TransactionDate),
	}
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[transactionRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	tx := row.toTransaction()
	return &tx, nil
}

// Insert stores a new transaction.
func (t *TransactionsTable) Insert(ctx context.Context, tx ledger.Transaction) error {
	q := psql.Insert(
		im.Into(transactionsTable, "id", "type", "amount", "category", "title", "transaction_date"),
		im.Values(psql.Arg(tx.ID, string(tx.Type), tx.Amount, tx.Category, tx.Title, ledger.CalendarDate(tx.Date))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// Delete removes a transaction. Allocation events that reference it are kept.
func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(transactionsTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	return nil
}

// List returns the whole log in insertion order.
func (t *TransactionsTable) List(ctx context.Context) ([]ledger.Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTable),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}
	result := make([]ledger.Transaction, len(rows))
	for i, row := range rows {
		result[i] = row.toTransaction()
	}
	return result, nil
}
