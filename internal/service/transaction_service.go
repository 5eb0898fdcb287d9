package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/ledger"
	"github.com/carson-networks/budget-allocator/internal/operator/actions"
	"github.com/carson-networks/budget-allocator/internal/savings"
)

// NewTransaction is what a caller supplies to record a transaction.
type NewTransaction struct {
	Type     ledger.TransactionType
	Amount   decimal.Decimal
	Category string
	Title    string
	Date     time.Time // defaults to today if zero
}

// TransactionList is the log grouped for display.
type TransactionList struct {
	Currency string
	Groups   []ledger.CategoryGroup
	// IncomeStatus tells for every income whether its savings were allocated.
	IncomeStatus map[uuid.UUID]savings.IncomeStatus
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	loader    *stateLoader
	processor ActionProcessor
	now       func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(loader *stateLoader, processor ActionProcessor) *TransactionService {
	return &TransactionService{loader: loader, processor: processor, now: time.Now}
}

// AddTransaction stores a new transaction and returns it together with any
// advisories about it. Advisories never stop the transaction from being stored.
func (s *TransactionService) AddTransaction(ctx context.Context, in NewTransaction) (ledger.Transaction, []ledger.Advisory, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return ledger.Transaction{}, nil, fmt.Errorf("failed to generate transaction id: %w", err)
	}

	date := in.Date
	if date.IsZero() {
		date = s.now()
	}
	tx := ledger.Transaction{
		ID:       id,
		Type:     in.Type,
		Amount:   amount.Round2(in.Amount),
		Category: in.Category,
		Title:    in.Title,
		Date:     ledger.CalendarDate(date),
	}
	if err := tx.Validate(); err != nil {
		return ledger.Transaction{}, nil, err
	}

	var advice []ledger.Advisory
	if tx.Type == ledger.TypeExpense {
		state, err := s.loader.load(ctx)
		if err != nil {
			return ledger.Transaction{}, nil, err
		}
		advice = ledger.Advise(tx, state.Transactions, state.Budgets)
	}

	if err := s.processor.Process(ctx, &actions.AddTransaction{Transaction: tx}); err != nil {
		return ledger.Transaction{}, nil, err
	}
	return tx, advice, nil
}

// DeleteTransaction removes a transaction from the log.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteTransaction{ID: id})
}

// ListTransactions returns the whole log grouped by category, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context) (*TransactionList, error) {
	state, err := s.loader.load(ctx)
	if err != nil {
		return nil, err
	}

	status := make(map[uuid.UUID]savings.IncomeStatus)
	for _, tx := range ledger.OfType(state.Transactions, ledger.TypeIncome) {
		status[tx.ID] = savings.Status(state.Events, tx.ID)
	}

	return &TransactionList{
		Currency:     state.Currency,
		Groups:       ledger.GroupByCategory(state.Transactions),
		IncomeStatus: status,
	}, nil
}
