package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-allocator/internal/ledger"
	"github.com/carson-networks/budget-allocator/internal/storage"
)

// AddTransaction appends one transaction to the log.
type AddTransaction struct {
	Transaction ledger.Transaction
	IAction
}

func (a *AddTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := a.Transaction.Validate(); err != nil {
		return err
	}
	return writer.Transactions.Insert(ctx, a.Transaction)
}

// DeleteTransaction removes a transaction. Savings allocations made from it
// stay on record.
type DeleteTransaction struct {
	ID uuid.UUID
	IAction
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Delete(ctx, a.ID)
}
