package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-allocator/internal/allocation"
	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/ledger"
	"github.com/carson-networks/budget-allocator/internal/operator/actions"
	"github.com/carson-networks/budget-allocator/internal/savings"
)

// AllocationRequest asks for one income's savings to be allocated. Zero
// values fall back to the default split and savings percentage.
type AllocationRequest struct {
	IncomeID       uuid.UUID
	Percentages    amount.Map
	SavingsPercent *decimal.Decimal
}

// AllocationResult is the recorded event and the planned totals after it.
// Balanced is false when the percentages did not sum to 100; the event is
// recorded regardless.
type AllocationResult struct {
	Event    savings.Event
	Planned  amount.Map
	Balanced bool
}

// SavingsReport is the planned-versus-done view plus the event totals.
type SavingsReport struct {
	Currency string
	Report   savings.Report
	Totals   savings.Totals
}

type SavingsService struct {
	loader    *stateLoader
	processor ActionProcessor
	now       func() time.Time
}

func NewSavingsService(loader *stateLoader, processor ActionProcessor) *SavingsService {
	return &SavingsService{loader: loader, processor: processor, now: time.Now}
}

// Allocate splits the savings share of an income over the savings types.
func (s *SavingsService) Allocate(ctx context.Context, req AllocationRequest) (*AllocationResult, error) {
	percentages := req.Percentages
	if len(percentages) == 0 {
		percentages = savings.DefaultAllocation()
	}
	savingsPercent := decimal.NewFromInt(savings.DefaultSavingsPercent)
	if req.SavingsPercent != nil {
		savingsPercent = *req.SavingsPercent
	}

	action := &actions.AllocateSavings{
		IncomeID:       req.IncomeID,
		Percentages:    percentages,
		SavingsPercent: savingsPercent,
		On:             s.now(),
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	return &AllocationResult{
		Event:    action.Event,
		Planned:  action.Planned,
		Balanced: !errors.Is(allocation.Validate(percentages), allocation.ErrUnbalanced),
	}, nil
}

// Report lists planned and realised savings per type.
func (s *SavingsService) Report(ctx context.Context) (*SavingsReport, error) {
	state, err := s.loader.load(ctx)
	if err != nil {
		return nil, err
	}
	return &SavingsReport{
		Currency: state.Currency,
		Report:   savings.BuildReport(state.Planned, state.Transactions, nil),
		Totals:   savings.CalculateTotals(state.Events),
	}, nil
}

// SetPlanned overwrites the planned total of one savings type.
func (s *SavingsService) SetPlanned(ctx context.Context, category string, value decimal.Decimal) (amount.Map, error) {
	action := &actions.SetPlannedSavings{Category: category, Amount: value}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// AddType registers a custom savings type.
func (s *SavingsService) AddType(ctx context.Context, name string) (amount.Map, error) {
	action := &actions.AddSavingsType{Name: name}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// AutoAllocate resets planned totals to the default split of half of all income.
func (s *SavingsService) AutoAllocate(ctx context.Context) (amount.Map, error) {
	action := &actions.AutoAllocatePlanned{}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// Unallocated lists incomes with no allocation event yet.
func (s *SavingsService) Unallocated(ctx context.Context) ([]ledger.Transaction, error) {
	state, err := s.loader.load(ctx)
	if err != nil {
		return nil, err
	}
	return savings.UnallocatedIncomes(state.Transactions, state.Events), nil
}
