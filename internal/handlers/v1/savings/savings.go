package savings

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/handlers/httpmodel"
	"github.com/carson-networks/budget-allocator/internal/ledger"
	"github.com/carson-networks/budget-allocator/internal/service"
)

// Event is the API response model for a savings allocation event.
type Event struct {
	ID                  string                  `json:"id"`
	Date                string                  `json:"date"`
	IncomeTransactionID string                  `json:"incomeTransactionID"`
	IncomeAmount        string                  `json:"incomeAmount"`
	SavingsPercentage   string                  `json:"savingsPercentage"`
	SavingsAmount       string                  `json:"savingsAmount"`
	Allocations         []httpmodel.AmountEntry `json:"allocations" doc:"Percentage per savings key"`
	AllocationAmounts   []httpmodel.AmountEntry `json:"allocationAmounts" doc:"Amount per savings key"`
}

type AllocateInput struct {
	Body struct {
		IncomeTransactionID string                  `json:"incomeTransactionID" format:"uuid" doc:"Income to allocate"`
		SavingsPercentage   string                  `json:"savingsPercentage,omitempty" doc:"Share of the income to save, defaults to 50"`
		Allocations         []httpmodel.AmountInput `json:"allocations,omitempty" doc:"Percentage per savings key, defaults to the standard split"`
	}
}

type AllocateResponseBody struct {
	Event    Event                   `json:"event"`
	Planned  []httpmodel.AmountEntry `json:"planned" doc:"Planned totals after this allocation"`
	Balanced bool                    `json:"balanced" doc:"False when the percentages did not sum to 100"`
}

type AllocateOutput struct {
	Body AllocateResponseBody
}

type allocator interface {
	Allocate(ctx context.Context, req service.AllocationRequest) (*service.AllocationResult, error)
}

// AllocateHandler handles POST /v1/savings/allocate.
type AllocateHandler struct {
	SavingsService allocator
}

func NewAllocateHandler(svc allocator) *AllocateHandler {
	return &AllocateHandler{SavingsService: svc}
}

func (h *AllocateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "allocate-savings",
		Method:        http.MethodPost,
		Path:          "/v1/savings/allocate",
		Summary:       "Allocate savings of an income",
		Description:   "Records how the savings share of one income is split. Each income can be allocated once.",
		Tags:          []string{"Savings"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseAllocateInput(input *AllocateInput) (service.AllocationRequest, error) {
	id, err := uuid.FromString(input.Body.IncomeTransactionID)
	if err != nil {
		return service.AllocationRequest{}, huma.NewError(http.StatusBadRequest, "invalid incomeTransactionID", err)
	}
	req := service.AllocationRequest{IncomeID: id}

	if input.Body.SavingsPercentage != "" {
		pct, err := httpmodel.ParseAmount("savingsPercentage", input.Body.SavingsPercentage)
		if err != nil {
			return service.AllocationRequest{}, err
		}
		req.SavingsPercent = &pct
	}
	if req.Percentages, err = httpmodel.ToMap("allocation", input.Body.Allocations); err != nil {
		return service.AllocationRequest{}, err
	}
	return req, nil
}

func (h *AllocateHandler) handle(ctx context.Context, input *AllocateInput) (*AllocateOutput, error) {
	req, err := parseAllocateInput(input)
	if err != nil {
		return nil, err
	}

	result, err := h.SavingsService.Allocate(ctx, req)
	if err != nil {
		return nil, httpmodel.Error("failed to allocate savings", err)
	}

	ev := result.Event
	return &AllocateOutput{Body: AllocateResponseBody{
		Event: Event{
			ID:                  ev.ID.String(),
			Date:                ev.Date.Format(httpmodel.DateLayout),
			IncomeTransactionID: ev.IncomeTransactionID.String(),
			IncomeAmount:        httpmodel.Money(ev.IncomeAmount),
			SavingsPercentage:   httpmodel.Money(ev.SavingsPercentage),
			SavingsAmount:       httpmodel.Money(ev.SavingsAmount),
			Allocations:         httpmodel.FromMap(ev.Allocations, ""),
			AllocationAmounts:   httpmodel.FromMap(ev.AllocationAmounts, ""),
		},
		Planned:  httpmodel.FromMap(result.Planned, ""),
		Balanced: result.Balanced,
	}}, nil
}

// ReportLine is planned against done for one savings type.
type ReportLine struct {
	Type    string `json:"type"`
	Planned string `json:"planned"`
	Done    string `json:"done"`
}

type ReportResponseBody struct {
	Currency       string       `json:"currency"`
	Lines          []ReportLine `json:"lines"`
	TotalPlanned   string       `json:"totalPlanned"`
	TotalDone      string       `json:"totalDone"`
	TotalSavings   string       `json:"totalSavings" doc:"Sum of savings amounts over all allocation events"`
	TotalAllocated string       `json:"totalAllocated" doc:"Sum of allocated amounts over all allocation events"`
}

type ReportOutput struct {
	Body ReportResponseBody
}

type reporter interface {
	Report(ctx context.Context) (*service.SavingsReport, error)
	Unallocated(ctx context.Context) ([]ledger.Transaction, error)
}

// ReportHandler serves the read-only savings views.
type ReportHandler struct {
	SavingsService reporter
}

func NewReportHandler(svc reporter) *ReportHandler {
	return &ReportHandler{SavingsService: svc}
}

type UnallocatedIncome struct {
	ID     string `json:"id"`
	Amount string `json:"amount"`
	Title  string `json:"title"`
	Date   string `json:"date"`
}

type UnallocatedOutput struct {
	Body struct {
		Incomes []UnallocatedIncome `json:"incomes"`
	}
}

func (h *ReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-savings-report",
		Method:      http.MethodGet,
		Path:        "/v1/savings/report",
		Summary:     "Savings report",
		Tags:        []string{"Savings"},
	}, h.report)

	huma.Register(api, huma.Operation{
		OperationID: "list-unallocated-incomes",
		Method:      http.MethodGet,
		Path:        "/v1/savings/unallocated",
		Summary:     "Incomes awaiting allocation",
		Tags:        []string{"Savings"},
	}, h.unallocated)
}

func (h *ReportHandler) report(ctx context.Context, _ *struct{}) (*ReportOutput, error) {
	r, err := h.SavingsService.Report(ctx)
	if err != nil {
		return nil, httpmodel.Error("failed to build savings report", err)
	}

	body := ReportResponseBody{
		Currency:       r.Currency,
		Lines:          make([]ReportLine, len(r.Report.Lines)),
		TotalPlanned:   httpmodel.Money(r.Report.TotalPlanned),
		TotalDone:      httpmodel.Money(r.Report.TotalDone),
		TotalSavings:   httpmodel.Money(r.Totals.TotalSavings),
		TotalAllocated: httpmodel.Money(r.Totals.TotalAllocated),
	}
	for i, line := range r.Report.Lines {
		body.Lines[i] = ReportLine{Type: line.Type, Planned: httpmodel.Money(line.Planned), Done: httpmodel.Money(line.Done)}
	}
	return &ReportOutput{Body: body}, nil
}

func (h *ReportHandler) unallocated(ctx context.Context, _ *struct{}) (*UnallocatedOutput, error) {
	incomes, err := h.SavingsService.Unallocated(ctx)
	if err != nil {
		return nil, httpmodel.Error("failed to list unallocated incomes", err)
	}

	out := &UnallocatedOutput{}
	out.Body.Incomes = make([]UnallocatedIncome, len(incomes))
	for i, tx := range incomes {
		out.Body.Incomes[i] = UnallocatedIncome{
			ID:     tx.ID.String(),
			Amount: httpmodel.Money(tx.Amount),
			Title:  tx.Title,
			Date:   tx.Date.Format(httpmodel.DateLayout),
		}
	}
	return out, nil
}

type PlannedOutput struct {
	Body struct {
		Planned []httpmodel.AmountEntry `json:"planned"`
	}
}

type SetPlannedInput struct {
	Body struct {
		Type   string `json:"type" minLength:"1" doc:"Savings type name"`
		Amount string `json:"amount" doc:"New planned total"`
	}
}

type AddTypeInput struct {
	Body struct {
		Name string `json:"name" minLength:"1" doc:"Custom savings type name"`
	}
}

type plannedEditor interface {
	SetPlanned(ctx context.Context, category string, value decimal.Decimal) (amount.Map, error)
	AddType(ctx context.Context, name string) (amount.Map, error)
	AutoAllocate(ctx context.Context) (amount.Map, error)
}

// PlannedHandler edits the planned savings totals.
type PlannedHandler struct {
	SavingsService plannedEditor
}

func NewPlannedHandler(svc plannedEditor) *PlannedHandler {
	return &PlannedHandler{SavingsService: svc}
}

func (h *PlannedHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-planned-savings",
		Method:      http.MethodPut,
		Path:        "/v1/savings/planned",
		Summary:     "Set planned savings",
		Tags:        []string{"Savings"},
	}, h.setPlanned)

	huma.Register(api, huma.Operation{
		OperationID:   "add-savings-type",
		Method:        http.MethodPost,
		Path:          "/v1/savings/type",
		Summary:       "Add custom savings type",
		Tags:          []string{"Savings"},
		DefaultStatus: http.StatusCreated,
	}, h.addType)

	huma.Register(api, huma.Operation{
		OperationID: "auto-allocate-planned-savings",
		Method:      http.MethodPost,
		Path:        "/v1/savings/planned/auto",
		Summary:     "Auto-allocate planned savings",
		Description: "Resets the fixed types to the default split of half of all income.",
		Tags:        []string{"Savings"},
	}, h.autoAllocate)
}

func plannedOutput(planned amount.Map) *PlannedOutput {
	out := &PlannedOutput{}
	out.Body.Planned = httpmodel.FromMap(planned, "")
	return out
}

func (h *PlannedHandler) setPlanned(ctx context.Context, input *SetPlannedInput) (*PlannedOutput, error) {
	value, err := httpmodel.ParseAmount("amount", input.Body.Amount)
	if err != nil {
		return nil, err
	}
	planned, err := h.SavingsService.SetPlanned(ctx, input.Body.Type, value)
	if err != nil {
		return nil, httpmodel.Error("failed to set planned savings", err)
	}
	return plannedOutput(planned), nil
}

func (h *PlannedHandler) addType(ctx context.Context, input *AddTypeInput) (*PlannedOutput, error) {
	planned, err := h.SavingsService.AddType(ctx, input.Body.Name)
	if err != nil {
		return nil, httpmodel.Error("failed to add savings type", err)
	}
	return plannedOutput(planned), nil
}

func (h *PlannedHandler) autoAllocate(ctx context.Context, _ *struct{}) (*PlannedOutput, error) {
	planned, err := h.SavingsService.AutoAllocate(ctx)
	if err != nil {
		return nil, httpmodel.Error("failed to auto-allocate planned savings", err)
	}
	return plannedOutput(planned), nil
}
