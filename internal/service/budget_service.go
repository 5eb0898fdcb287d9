package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/ledger"
	"github.com/carson-networks/budget-allocator/internal/operator/actions"
	"github.com/carson-networks/budget-allocator/internal/savings"
	"github.com/carson-networks/budget-allocator/internal/suggestion"
)

// Overview is the dashboard: totals, per-category budget figures and the
// savings summary.
type Overview struct {
	Currency           string
	Totals             ledger.Totals
	Budgets            amount.Map
	Spending           amount.Map
	Remaining          amount.Map
	OverBudget         []string
	Progress           []ledger.CategoryProgress
	Savings            savings.Totals
	Planned            amount.Map
	UnallocatedIncomes int

	// NeedsBudgetPlan is set once there is income but no category has a limit.
	NeedsBudgetPlan bool
}

// BudgetSuggestion is a proposed budget map and the figures it derives from.
type BudgetSuggestion struct {
	Currency              string
	TotalIncome           decimal.Decimal
	TotalSavings          decimal.Decimal
	RemainingAfterSavings decimal.Decimal
	Budgets               amount.Map
}

// ExpensePlan proposes spending per category with money left.
type ExpensePlan struct {
	Currency  string
	Remaining amount.Map
	Plan      amount.Map
}

// BudgetService handles category budgets and the figures derived from them.
type BudgetService struct {
	loader    *stateLoader
	processor ActionProcessor
}

func NewBudgetService(loader *stateLoader, processor ActionProcessor) *BudgetService {
	return &BudgetService{loader: loader, processor: processor}
}

// Overview computes the dashboard from the current state.
func (s *BudgetService) Overview(ctx context.Context) (*Overview, error) {
	state, err := s.loader.load(ctx)
	if err != nil {
		return nil, err
	}

	spending := ledger.CategorySpending(state.Transactions, state.Budgets.Keys())
	var over []string
	for _, category := range state.Budgets.Keys() {
		if ledger.IsOverBudget(state.Budgets, spending, category) {
			over = append(over, category)
		}
	}

	totals := ledger.CalculateTotals(state.Transactions)
	return &Overview{
		Currency:           state.Currency,
		Totals:             totals,
		Budgets:            state.Budgets,
		Spending:           spending,
		Remaining:          ledger.RemainingBudget(state.Budgets, spending),
		OverBudget:         over,
		Progress:           ledger.Progress(state.Budgets, spending),
		Savings:            savings.CalculateTotals(state.Events),
		Planned:            state.Planned,
		UnallocatedIncomes: len(savings.UnallocatedIncomes(state.Transactions, state.Events)),
		NeedsBudgetPlan:    totals.Income.IsPositive() && ledger.AllZero(state.Budgets),
	}, nil
}

// UpdateBudgets merges updates into the stored budgets.
func (s *BudgetService) UpdateBudgets(ctx context.Context, updates amount.Map) (amount.Map, error) {
	action := &actions.UpdateBudgets{Updates: updates}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// AddCategory registers a custom budget category.
func (s *BudgetService) AddCategory(ctx context.Context, name string) (amount.Map, error) {
	action := &actions.AddBudgetCategory{Name: name}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// SuggestBudget proposes limits from what income leaves after savings.
func (s *BudgetService) SuggestBudget(ctx context.Context) (*BudgetSuggestion, error) {
	state, err := s.loader.load(ctx)
	if err != nil {
		return nil, err
	}
	return suggestBudget(state), nil
}

// ApplyBudgetSuggestion merges the current suggestion into the stored budgets.
func (s *BudgetService) ApplyBudgetSuggestion(ctx context.Context) (amount.Map, error) {
	suggested, err := s.SuggestBudget(ctx)
	if err != nil {
		return nil, err
	}
	return s.UpdateBudgets(ctx, suggested.Budgets)
}

// ExpensePlan proposes how to spend what each category has left.
func (s *BudgetService) ExpensePlan(ctx context.Context) (*ExpensePlan, error) {
	state, err := s.loader.load(ctx)
	if err != nil {
		return nil, err
	}

	spending := ledger.CategorySpending(state.Transactions, state.Budgets.Keys())
	remaining := ledger.RemainingBudget(state.Budgets, spending)
	return &ExpensePlan{
		Currency:  state.Currency,
		Remaining: remaining,
		Plan:      suggestion.SuggestExpensePlan(remaining),
	}, nil
}

func suggestBudget(state *State) *BudgetSuggestion {
	income := ledger.CalculateTotals(state.Transactions).Income
	saved := savings.CalculateTotals(state.Events).TotalSavings
	left := suggestion.RemainingAfterSavings(income, saved)

	return &BudgetSuggestion{
		Currency:              state.Currency,
		TotalIncome:           income,
		TotalSavings:          saved,
		RemainingAfterSavings: left,
		Budgets:               suggestion.SuggestBudgetAllocation(left),
	}
}
