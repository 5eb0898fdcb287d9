package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/handlers/httpmodel"
)

// BudgetsResponseBody is the full budget map after a change.
type BudgetsResponseBody struct {
	Budgets []httpmodel.AmountEntry `json:"budgets"`
}

type BudgetsOutput struct {
	Body BudgetsResponseBody
}

type UpdateBudgetsInput struct {
	Body struct {
		Budgets []httpmodel.AmountInput `json:"budgets" minItems:"1" doc:"Limits to set, merged over the current budgets"`
	}
}

type budgetUpdater interface {
	UpdateBudgets(ctx context.Context, updates amount.Map) (amount.Map, error)
}

// UpdateBudgetsHandler handles PUT /v1/budget.
type UpdateBudgetsHandler struct {
	BudgetService budgetUpdater
}

func NewUpdateBudgetsHandler(svc budgetUpdater) *UpdateBudgetsHandler {
	return &UpdateBudgetsHandler{BudgetService: svc}
}

func (h *UpdateBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-budgets",
		Method:      http.MethodPut,
		Path:        "/v1/budget",
		Summary:     "Update budgets",
		Description: "Merges the given limits over the stored budgets. Unlisted categories keep their limit.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *UpdateBudgetsHandler) handle(ctx context.Context, input *UpdateBudgetsInput) (*BudgetsOutput, error) {
	updates, err := httpmodel.ToMap("budget amount", input.Body.Budgets)
	if err != nil {
		return nil, err
	}
	budgets, err := h.BudgetService.UpdateBudgets(ctx, updates)
	if err != nil {
		return nil, httpmodel.Error("failed to update budgets", err)
	}
	return &BudgetsOutput{Body: BudgetsResponseBody{Budgets: httpmodel.FromMap(budgets, "")}}, nil
}

type AddCategoryInput struct {
	Body struct {
		Name string `json:"name" minLength:"1" doc:"New category name"`
	}
}

type categoryAdder interface {
	AddCategory(ctx context.Context, name string) (amount.Map, error)
}

// AddCategoryHandler handles POST /v1/budget/category.
type AddCategoryHandler struct {
	BudgetService categoryAdder
}

func NewAddCategoryHandler(svc categoryAdder) *AddCategoryHandler {
	return &AddCategoryHandler{BudgetService: svc}
}

func (h *AddCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "add-budget-category",
		Method:        http.MethodPost,
		Path:          "/v1/budget/category",
		Summary:       "Add budget category",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *AddCategoryHandler) handle(ctx context.Context, input *AddCategoryInput) (*BudgetsOutput, error) {
	budgets, err := h.BudgetService.AddCategory(ctx, input.Body.Name)
	if err != nil {
		return nil, httpmodel.Error("failed to add category", err)
	}
	return &BudgetsOutput{Body: BudgetsResponseBody{Budgets: httpmodel.FromMap(budgets, "")}}, nil
}
