package service

import (
	"context"

	"github.com/carson-networks/budget-allocator/internal/operator/actions"
	"github.com/carson-networks/budget-allocator/internal/storage"
)

// ActionProcessor applies write actions one at a time.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Budget      *BudgetService
	Savings     *SavingsService
	Allocation  *AllocationService
	Settings    *SettingsService
}

// NewService creates a new Service. Reads go to store directly; writes are
// handed to processor.
func NewService(store *storage.Storage, processor ActionProcessor, defaultCurrency string) *Service {
	loader := &stateLoader{storage: store, defaultCurrency: defaultCurrency}
	return &Service{
		Transaction: NewTransactionService(loader, processor),
		Budget:      NewBudgetService(loader, processor),
		Savings:     NewSavingsService(loader, processor),
		Allocation:  NewAllocationService(),
		Settings:    NewSettingsService(loader, processor),
	}
}
