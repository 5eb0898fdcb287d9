package allocation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/handlers/httpmodel"
	"github.com/carson-networks/budget-allocator/internal/service"
)

type RedistributeInput struct {
	Body struct {
		Current []httpmodel.AmountInput `json:"current,omitempty" doc:"Current percentage shares, defaults to the savings split"`
		Key     string                  `json:"key" minLength:"1" doc:"Category being changed"`
		Value   string                  `json:"value" doc:"New percentage, clamped to 0-100"`
	}
}

type ProjectInput struct {
	Body struct {
		Base   string                  `json:"base" doc:"Amount to split"`
		Shares []httpmodel.AmountInput `json:"shares" doc:"Percentage shares"`
	}
}

// AllocationResponseBody is a set of shares or amounts plus whether the
// shares summed to 100.
type AllocationResponseBody struct {
	Entries  []httpmodel.AmountEntry `json:"entries"`
	Balanced bool                    `json:"balanced"`
}

type AllocationOutput struct {
	Body AllocationResponseBody
}

type allocator interface {
	Redistribute(current amount.Map, key string, value decimal.Decimal) (*service.AllocationPreview, error)
	Project(base decimal.Decimal, shares amount.Map) (amount.Map, bool)
}

// Handler serves the stateless allocation calculators.
type Handler struct {
	AllocationService allocator
}

func NewHandler(svc allocator) *Handler {
	return &Handler{AllocationService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "redistribute-allocation",
		Method:      http.MethodPost,
		Path:        "/v1/allocation/redistribute",
		Summary:     "Redistribute percentages",
		Description: "Sets one share and rebalances the others proportionally so the set sums to 100.",
		Tags:        []string{"Allocation"},
	}, h.redistribute)

	huma.Register(api, huma.Operation{
		OperationID: "project-allocation",
		Method:      http.MethodPost,
		Path:        "/v1/allocation/project",
		Summary:     "Project percentages onto an amount",
		Tags:        []string{"Allocation"},
	}, h.project)
}

func (h *Handler) redistribute(_ context.Context, input *RedistributeInput) (*AllocationOutput, error) {
	current, err := httpmodel.ToMap("current share", input.Body.Current)
	if err != nil {
		return nil, err
	}
	value, err := httpmodel.ParseAmount("value", input.Body.Value)
	if err != nil {
		return nil, err
	}

	preview, err := h.AllocationService.Redistribute(current, input.Body.Key, value)
	if err != nil {
		return nil, httpmodel.Error("failed to redistribute", err)
	}
	return &AllocationOutput{Body: AllocationResponseBody{
		Entries:  httpmodel.FromMap(preview.Allocation, ""),
		Balanced: preview.Balanced,
	}}, nil
}

func (h *Handler) project(_ context.Context, input *ProjectInput) (*AllocationOutput, error) {
	base, err := httpmodel.ParseAmount("base", input.Body.Base)
	if err != nil {
		return nil, err
	}
	shares, err := httpmodel.ToMap("share", input.Body.Shares)
	if err != nil {
		return nil, err
	}

	amounts, balanced := h.AllocationService.Project(base, shares)
	return &AllocationOutput{Body: AllocationResponseBody{
		Entries:  httpmodel.FromMap(amounts, ""),
		Balanced: balanced,
	}}, nil
}
