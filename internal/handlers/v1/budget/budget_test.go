package budget

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/handlers/httpmodel"
	"github.com/carson-networks/budget-allocator/internal/ledger"
	"github.com/carson-networks/budget-allocator/internal/savings"
	"github.com/carson-networks/budget-allocator/internal/service"
)

type mockBudgetService struct {
	mock.Mock
}

func (m *mockBudgetService) Overview(ctx context.Context) (*service.Overview, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).(*service.Overview)
	return o, args.Error(1)
}

func (m *mockBudgetService) UpdateBudgets(ctx context.Context, updates amount.Map) (amount.Map, error) {
	args := m.Called(ctx, updates)
	b, _ := args.Get(0).(amount.Map)
	return b, args.Error(1)
}

func (m *mockBudgetService) AddCategory(ctx context.Context, name string) (amount.Map, error) {
	args := m.Called(ctx, name)
	b, _ := args.Get(0).(amount.Map)
	return b, args.Error(1)
}

func (m *mockBudgetService) SuggestBudget(ctx context.Context) (*service.BudgetSuggestion, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*service.BudgetSuggestion)
	return s, args.Error(1)
}

func (m *mockBudgetService) ApplyBudgetSuggestion(ctx context.Context) (amount.Map, error) {
	args := m.Called(ctx)
	b, _ := args.Get(0).(amount.Map)
	return b, args.Error(1)
}

func (m *mockBudgetService) ExpensePlan(ctx context.Context) (*service.ExpensePlan, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).(*service.ExpensePlan)
	return p, args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockBudgetService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewOverviewHandler(svc).Register(api)
	NewUpdateBudgetsHandler(svc).Register(api)
	NewAddCategoryHandler(svc).Register(api)
	NewSuggestionHandler(svc).Register(api)
	return api
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestHTTP_Overview(t *testing.T) {
	svc := new(mockBudgetService)
	svc.On("Overview", mock.Anything).Return(&service.Overview{
		Currency: "USD",
		Totals: ledger.Totals{
			Income: d("1000"), Expenses: d("150"), Balance: d("850"),
			SavingsDone: d("0"), NetBalance: d("850"), PercentSpent: d("15"),
		},
		Budgets:    amount.FromPairs("Food", "100"),
		Spending:   amount.FromPairs("Food", "150"),
		Remaining:  amount.FromPairs("Food", "-50"),
		OverBudget: []string{"Food"},
		Progress: []ledger.CategoryProgress{{
			Category: "Food", Spent: d("150"), Budget: d("100"), Remaining: d("-50"), PercentUsed: d("100"), Over: true,
		}},
		Savings:            savings.Totals{TotalSavings: d("500"), TotalAllocated: d("490")},
		UnallocatedIncomes: 2,
		NeedsBudgetPlan:    true,
	}, nil)

	resp := newTestAPI(t, svc).Get("/v1/overview")

	require.Equal(t, http.StatusOK, resp.Code)
	var body OverviewResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "1000.00", body.Totals.Income)
	assert.Equal(t, "$1,000.00", body.Display["income"])
	assert.Equal(t, []string{"Food"}, body.OverBudget)
	assert.Equal(t, "-50.00", body.Remaining[0].Amount)
	assert.True(t, body.Progress[0].Over)
	assert.Equal(t, "490.00", body.Savings.TotalAllocated)
	assert.Equal(t, 2, body.Savings.UnallocatedIncomes)
	assert.Empty(t, body.Savings.Planned)
	assert.True(t, body.NeedsBudgetPlan)
}

func TestHTTP_Overview_ServiceError(t *testing.T) {
	svc := new(mockBudgetService)
	svc.On("Overview", mock.Anything).Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, svc).Get("/v1/overview")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_UpdateBudgets(t *testing.T) {
	svc := new(mockBudgetService)
	svc.On("UpdateBudgets", mock.Anything, mock.MatchedBy(func(m amount.Map) bool {
		return len(m) == 2 && m.At("Food").Equal(d("300")) && m.Keys()[1] == "Pets"
	})).Return(amount.FromPairs("Food", "300", "Other", "0", "Pets", "40"), nil)

	resp := newTestAPI(t, svc).Put("/v1/budget", map[string]any{
		"budgets": []httpmodel.AmountInput{{Key: "Food", Amount: "300"}, {Key: "Pets", Amount: "40"}},
	})

	require.Equal(t, http.StatusOK, resp.Code)
	var body BudgetsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Budgets, 3)
	assert.Equal(t, "Pets", body.Budgets[2].Key)
	svc.AssertExpectations(t)
}

func TestHTTP_UpdateBudgets_BadAmount(t *testing.T) {
	svc := new(mockBudgetService)

	resp := newTestAPI(t, svc).Put("/v1/budget", map[string]any{
		"budgets": []httpmodel.AmountInput{{Key: "Food", Amount: "a lot"}},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "UpdateBudgets")
}

func TestHTTP_AddCategory_Conflict(t *testing.T) {
	svc := new(mockBudgetService)
	svc.On("AddCategory", mock.Anything, "Food").Return(nil, ledger.ErrCategoryExists)

	resp := newTestAPI(t, svc).Post("/v1/budget/category", map[string]any{"name": "Food"})

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_AddCategory(t *testing.T) {
	svc := new(mockBudgetService)
	svc.On("AddCategory", mock.Anything, "Pets").Return(amount.FromPairs("Food", "0", "Pets", "0"), nil)

	resp := newTestAPI(t, svc).Post("/v1/budget/category", map[string]any{"name": "Pets"})

	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestHTTP_Suggestion(t *testing.T) {
	svc := new(mockBudgetService)
	svc.On("SuggestBudget", mock.Anything).Return(&service.BudgetSuggestion{
		Currency:              "EUR",
		TotalIncome:           d("1000"),
		TotalSavings:          d("500"),
		RemainingAfterSavings: d("500"),
		Budgets:               amount.FromPairs("Housing", "42.5"),
	}, nil)

	resp := newTestAPI(t, svc).Get("/v1/budget/suggestion")

	require.Equal(t, http.StatusOK, resp.Code)
	var body SuggestionResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "500.00", body.RemainingAfterSavings)
	assert.Equal(t, "42.50", body.Budgets[0].Amount)
	assert.Contains(t, body.Budgets[0].Display, "42")
}

func TestHTTP_ApplySuggestion(t *testing.T) {
	svc := new(mockBudgetService)
	svc.On("ApplyBudgetSuggestion", mock.Anything).Return(amount.FromPairs("Housing", "42.5"), nil)

	resp := newTestAPI(t, svc).Post("/v1/budget/suggestion/apply")

	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_ExpensePlan(t *testing.T) {
	svc := new(mockBudgetService)
	svc.On("ExpensePlan", mock.Anything).Return(&service.ExpensePlan{
		Currency:  "USD",
		Remaining: amount.FromPairs("Food", "60", "Housing", "-100"),
		Plan:      amount.FromPairs("Food", "9"),
	}, nil)

	resp := newTestAPI(t, svc).Get("/v1/budget/expense-plan")

	require.Equal(t, http.StatusOK, resp.Code)
	var body ExpensePlanResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Remaining, 2)
	require.Len(t, body.Plan, 1)
	assert.Equal(t, "$9.00", body.Plan[0].Display)
}
