package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/handlers/httpmodel"
	"github.com/carson-networks/budget-allocator/internal/service"
)

type SuggestionResponseBody struct {
	Currency              string                  `json:"currency"`
	TotalIncome           string                  `json:"totalIncome"`
	TotalSavings          string                  `json:"totalSavings"`
	RemainingAfterSavings string                  `json:"remainingAfterSavings"`
	Budgets               []httpmodel.AmountEntry `json:"budgets" doc:"Proposed limit per category"`
}

type SuggestionOutput struct {
	Body SuggestionResponseBody
}

type ExpensePlanResponseBody struct {
	Currency  string                  `json:"currency"`
	Remaining []httpmodel.AmountEntry `json:"remaining" doc:"Budget left per category, negative when over"`
	Plan      []httpmodel.AmountEntry `json:"plan" doc:"Proposed spend for categories with money left"`
}

type ExpensePlanOutput struct {
	Body ExpensePlanResponseBody
}

type suggester interface {
	SuggestBudget(ctx context.Context) (*service.BudgetSuggestion, error)
	ApplyBudgetSuggestion(ctx context.Context) (amount.Map, error)
	ExpensePlan(ctx context.Context) (*service.ExpensePlan, error)
}

// SuggestionHandler serves the budget suggestion and expense plan endpoints.
type SuggestionHandler struct {
	BudgetService suggester
}

func NewSuggestionHandler(svc suggester) *SuggestionHandler {
	return &SuggestionHandler{BudgetService: svc}
}

func (h *SuggestionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "suggest-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/budget/suggestion",
		Summary:     "Suggest budgets",
		Description: "Proposes limits from half of what income leaves after savings.",
		Tags:        []string{"Budgets"},
	}, h.suggest)

	huma.Register(api, huma.Operation{
		OperationID: "apply-budget-suggestion",
		Method:      http.MethodPost,
		Path:        "/v1/budget/suggestion/apply",
		Summary:     "Apply budget suggestion",
		Description: "Merges the current suggestion over the stored budgets.",
		Tags:        []string{"Budgets"},
	}, h.apply)

	huma.Register(api, huma.Operation{
		OperationID: "get-expense-plan",
		Method:      http.MethodGet,
		Path:        "/v1/budget/expense-plan",
		Summary:     "Expense plan",
		Tags:        []string{"Budgets"},
	}, h.expensePlan)
}

func (h *SuggestionHandler) suggest(ctx context.Context, _ *struct{}) (*SuggestionOutput, error) {
	s, err := h.BudgetService.SuggestBudget(ctx)
	if err != nil {
		return nil, httpmodel.Error("failed to suggest budgets", err)
	}
	return &SuggestionOutput{Body: SuggestionResponseBody{
		Currency:              s.Currency,
		TotalIncome:           httpmodel.Money(s.TotalIncome),
		TotalSavings:          httpmodel.Money(s.TotalSavings),
		RemainingAfterSavings: httpmodel.Money(s.RemainingAfterSavings),
		Budgets:               httpmodel.FromMap(s.Budgets, s.Currency),
	}}, nil
}

func (h *SuggestionHandler) apply(ctx context.Context, _ *struct{}) (*BudgetsOutput, error) {
	budgets, err := h.BudgetService.ApplyBudgetSuggestion(ctx)
	if err != nil {
		return nil, httpmodel.Error("failed to apply budget suggestion", err)
	}
	return &BudgetsOutput{Body: BudgetsResponseBody{Budgets: httpmodel.FromMap(budgets, "")}}, nil
}

func (h *SuggestionHandler) expensePlan(ctx context.Context, _ *struct{}) (*ExpensePlanOutput, error) {
	plan, err := h.BudgetService.ExpensePlan(ctx)
	if err != nil {
		return nil, httpmodel.Error("failed to build expense plan", err)
	}
	return &ExpensePlanOutput{Body: ExpensePlanResponseBody{
		Currency:  plan.Currency,
		Remaining: httpmodel.FromMap(plan.Remaining, plan.Currency),
		Plan:      httpmodel.FromMap(plan.Plan, plan.Currency),
	}}, nil
}
