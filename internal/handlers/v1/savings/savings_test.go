package savings

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/handlers/httpmodel"
	"github.com/carson-networks/budget-allocator/internal/ledger"
	"github.com/carson-networks/budget-allocator/internal/savings"
	"github.com/carson-networks/budget-allocator/internal/service"
	"github.com/carson-networks/budget-allocator/internal/storage/sqlconfig"
)

type mockSavingsService struct {
	mock.Mock
}

func (m *mockSavingsService) Allocate(ctx context.Context, req service.AllocationRequest) (*service.AllocationResult, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*service.AllocationResult)
	return r, args.Error(1)
}

func (m *mockSavingsService) Report(ctx context.Context) (*service.SavingsReport, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).(*service.SavingsReport)
	return r, args.Error(1)
}

func (m *mockSavingsService) Unallocated(ctx context.Context) ([]ledger.Transaction, error) {
	args := m.Called(ctx)
	txs, _ := args.Get(0).([]ledger.Transaction)
	return txs, args.Error(1)
}

func (m *mockSavingsService) SetPlanned(ctx context.Context, category string, value decimal.Decimal) (amount.Map, error) {
	args := m.Called(ctx, category, value)
	p, _ := args.Get(0).(amount.Map)
	return p, args.Error(1)
}

func (m *mockSavingsService) AddType(ctx context.Context, name string) (amount.Map, error) {
	args := m.Called(ctx, name)
	p, _ := args.Get(0).(amount.Map)
	return p, args.Error(1)
}

func (m *mockSavingsService) AutoAllocate(ctx context.Context) (amount.Map, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).(amount.Map)
	return p, args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockSavingsService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewAllocateHandler(svc).Register(api)
	NewReportHandler(svc).Register(api)
	NewPlannedHandler(svc).Register(api)
	return api
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// -- parseAllocateInput unit tests --

func TestParseAllocateInput_Defaults(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	input := &AllocateInput{}
	input.Body.IncomeTransactionID = id.String()

	req, err := parseAllocateInput(input)

	require.NoError(t, err)
	assert.Equal(t, id, req.IncomeID)
	assert.Nil(t, req.SavingsPercent)
	assert.Empty(t, req.Percentages)
}

func TestParseAllocateInput_Explicit(t *testing.T) {
	input := &AllocateInput{}
	input.Body.IncomeTransactionID = uuid.Must(uuid.NewV7()).String()
	input.Body.SavingsPercentage = "30"
	input.Body.Allocations = []httpmodel.AmountInput{{Key: "gold", Amount: "100"}}

	req, err := parseAllocateInput(input)

	require.NoError(t, err)
	require.NotNil(t, req.SavingsPercent)
	assert.True(t, req.SavingsPercent.Equal(d("30")))
	assert.Equal(t, []string{"gold"}, req.Percentages.Keys())
}

// -- HTTP integration tests --

func TestHTTP_Allocate(t *testing.T) {
	incomeID := uuid.Must(uuid.NewV7())
	svc := new(mockSavingsService)
	svc.On("Allocate", mock.Anything, mock.MatchedBy(func(req service.AllocationRequest) bool {
		return req.IncomeID == incomeID
	})).Return(&service.AllocationResult{
		Event: savings.Event{
			ID:                  uuid.Must(uuid.NewV7()),
			Date:                time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			IncomeTransactionID: incomeID,
			IncomeAmount:        d("1000"),
			SavingsPercentage:   d("50"),
			SavingsAmount:       d("500"),
			Allocations:         amount.FromPairs("stocks", "100"),
			AllocationAmounts:   amount.FromPairs("stocks", "500"),
		},
		Planned:  amount.FromPairs("Stocks", "500"),
		Balanced: true,
	}, nil)

	resp := newTestAPI(t, svc).Post("/v1/savings/allocate", map[string]any{
		"incomeTransactionID": incomeID.String(),
	})

	require.Equal(t, http.StatusCreated, resp.Code)
	var body AllocateResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "500.00", body.Event.SavingsAmount)
	assert.Equal(t, "2025-06-02", body.Event.Date)
	assert.Equal(t, "Stocks", body.Planned[0].Key)
	assert.True(t, body.Balanced)
}

func TestHTTP_Allocate_Errors(t *testing.T) {
	cases := map[error]int{
		savings.ErrAlreadyAllocated: http.StatusConflict,
		savings.ErrNotIncome:        http.StatusBadRequest,
		sqlconfig.ErrNotFound:       http.StatusNotFound,
	}
	for err, want := range cases {
		svc := new(mockSavingsService)
		svc.On("Allocate", mock.Anything, mock.Anything).Return(nil, err)

		resp := newTestAPI(t, svc).Post("/v1/savings/allocate", map[string]any{
			"incomeTransactionID": uuid.Must(uuid.NewV7()).String(),
		})

		assert.Equal(t, want, resp.Code, err.Error())
	}
}

func TestHTTP_Report(t *testing.T) {
	svc := new(mockSavingsService)
	svc.On("Report", mock.Anything).Return(&service.SavingsReport{
		Currency: "USD",
		Report: savings.Report{
			Lines:        []savings.ReportLine{{Type: "Stocks", Planned: d("100"), Done: d("80")}},
			TotalPlanned: d("100"),
			TotalDone:    d("80"),
		},
		Totals: savings.Totals{TotalSavings: d("600"), TotalAllocated: d("590")},
	}, nil)

	resp := newTestAPI(t, svc).Get("/v1/savings/report")

	require.Equal(t, http.StatusOK, resp.Code)
	var body ReportResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []ReportLine{{Type: "Stocks", Planned: "100.00", Done: "80.00"}}, body.Lines)
	assert.Equal(t, "600.00", body.TotalSavings)
	assert.Equal(t, "590.00", body.TotalAllocated)
}

func TestHTTP_Unallocated(t *testing.T) {
	income := ledger.Transaction{
		ID: uuid.Must(uuid.NewV7()), Type: ledger.TypeIncome, Amount: d("300"),
		Category: "Bonus", Title: "Q2", Date: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	svc := new(mockSavingsService)
	svc.On("Unallocated", mock.Anything).Return([]ledger.Transaction{income}, nil)

	resp := newTestAPI(t, svc).Get("/v1/savings/unallocated")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), income.ID.String())
}

func TestHTTP_SetPlanned(t *testing.T) {
	svc := new(mockSavingsService)
	svc.On("SetPlanned", mock.Anything, "Gold", mock.MatchedBy(func(v decimal.Decimal) bool {
		return v.Equal(d("75.5"))
	})).Return(amount.FromPairs("Gold", "75.5"), nil)

	resp := newTestAPI(t, svc).Put("/v1/savings/planned", map[string]any{"type": "Gold", "amount": "75.5"})

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"amount":"75.50"`)
}

func TestHTTP_AddType_Conflict(t *testing.T) {
	svc := new(mockSavingsService)
	svc.On("AddType", mock.Anything, "Gold").Return(nil, savings.ErrTypeExists)

	resp := newTestAPI(t, svc).Post("/v1/savings/type", map[string]any{"name": "Gold"})

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_AutoAllocate(t *testing.T) {
	svc := new(mockSavingsService)
	svc.On("AutoAllocate", mock.Anything).Return(amount.FromPairs("Stocks", "400"), nil)

	resp := newTestAPI(t, svc).Post("/v1/savings/planned/auto")

	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}
