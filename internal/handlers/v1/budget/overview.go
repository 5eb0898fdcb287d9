package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-allocator/internal/currency"
	"github.com/carson-networks/budget-allocator/internal/handlers/httpmodel"
	"github.com/carson-networks/budget-allocator/internal/service"
)

// Totals are the log-wide sums as decimal strings.
type Totals struct {
	Income       string `json:"income"`
	Expenses     string `json:"expenses"`
	Balance      string `json:"balance" doc:"Income minus expenses"`
	SavingsDone  string `json:"savingsDone" doc:"Sum of savings transactions"`
	NetBalance   string `json:"netBalance" doc:"Balance minus savings done"`
	PercentSpent string `json:"percentSpent" doc:"Expenses plus savings done as a percentage of income"`
}

// ProgressLine is budget against spend for one category.
type ProgressLine struct {
	Category    string `json:"category"`
	Spent       string `json:"spent"`
	Budget      string `json:"budget"`
	Remaining   string `json:"remaining"`
	PercentUsed string `json:"percentUsed" doc:"Capped at 100"`
	Over        bool   `json:"over"`
}

// SavingsSummary compares what was set aside with what was allocated.
type SavingsSummary struct {
	TotalSavings       string                  `json:"totalSavings"`
	TotalAllocated     string                  `json:"totalAllocated"`
	Planned            []httpmodel.AmountEntry `json:"planned"`
	UnallocatedIncomes int                     `json:"unallocatedIncomes"`
}

type OverviewResponseBody struct {
	Currency   string                  `json:"currency"`
	Totals     Totals                  `json:"totals"`
	Display    map[string]string       `json:"display" doc:"Totals formatted in the display currency"`
	Budgets    []httpmodel.AmountEntry `json:"budgets"`
	Spending   []httpmodel.AmountEntry `json:"spending"`
	Remaining  []httpmodel.AmountEntry `json:"remaining"`
	OverBudget []string                `json:"overBudget"`
	Progress   []ProgressLine          `json:"progress"`
	Savings    SavingsSummary          `json:"savings"`

	// NeedsBudgetPlan prompts the client to set category limits.
	NeedsBudgetPlan bool `json:"needsBudgetPlan" doc:"Income is recorded but every budget is zero"`
}

type OverviewOutput struct {
	Body OverviewResponseBody
}

type overviewer interface {
	Overview(ctx context.Context) (*service.Overview, error)
}

// OverviewHandler handles GET /v1/overview.
type OverviewHandler struct {
	BudgetService overviewer
}

func NewOverviewHandler(svc overviewer) *OverviewHandler {
	return &OverviewHandler{BudgetService: svc}
}

func (h *OverviewHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-overview",
		Method:      http.MethodGet,
		Path:        "/v1/overview",
		Summary:     "Dashboard overview",
		Description: "Totals, per-category budget progress and the savings summary.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *OverviewHandler) handle(ctx context.Context, _ *struct{}) (*OverviewOutput, error) {
	o, err := h.BudgetService.Overview(ctx)
	if err != nil {
		return nil, httpmodel.Error("failed to load overview", err)
	}

	code := o.Currency
	body := OverviewResponseBody{
		Currency: code,
		Totals: Totals{
			Income:       httpmodel.Money(o.Totals.Income),
			Expenses:     httpmodel.Money(o.Totals.Expenses),
			Balance:      httpmodel.Money(o.Totals.Balance),
			SavingsDone:  httpmodel.Money(o.Totals.SavingsDone),
			NetBalance:   httpmodel.Money(o.Totals.NetBalance),
			PercentSpent: httpmodel.Money(o.Totals.PercentSpent),
		},
		Display: map[string]string{
			"income":      currency.Format(o.Totals.Income, code),
			"expenses":    currency.Format(o.Totals.Expenses, code),
			"balance":     currency.Format(o.Totals.Balance, code),
			"savingsDone": currency.Format(o.Totals.SavingsDone, code),
			"netBalance":  currency.Format(o.Totals.NetBalance, code),
		},
		Budgets:    httpmodel.FromMap(o.Budgets, code),
		Spending:   httpmodel.FromMap(o.Spending, code),
		Remaining:  httpmodel.FromMap(o.Remaining, code),
		OverBudget: append([]string{}, o.OverBudget...),
		Progress:   make([]ProgressLine, len(o.Progress)),
		Savings: SavingsSummary{
			TotalSavings:       httpmodel.Money(o.Savings.TotalSavings),
			TotalAllocated:     httpmodel.Money(o.Savings.TotalAllocated),
			Planned:            httpmodel.FromMap(o.Planned, code),
			UnallocatedIncomes: o.UnallocatedIncomes,
		},
		NeedsBudgetPlan: o.NeedsBudgetPlan,
	}
	for i, p := range o.Progress {
		body.Progress[i] = ProgressLine{
			Category:    p.Category,
			Spent:       httpmodel.Money(p.Spent),
			Budget:      httpmodel.Money(p.Budget),
			Remaining:   httpmodel.Money(p.Remaining),
			PercentUsed: httpmodel.Money(p.PercentUsed),
			Over:        p.Over,
		}
	}
	return &OverviewOutput{Body: body}, nil
}
