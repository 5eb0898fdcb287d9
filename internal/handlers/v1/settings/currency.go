package settings

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-allocator/internal/currency"
	"github.com/carson-networks/budget-allocator/internal/handlers/httpmodel"
)

type CurrencyResponseBody struct {
	Code      string   `json:"code" doc:"ISO 4217 code amounts are displayed in"`
	Supported []string `json:"supported" doc:"Codes that can be selected"`
}

type CurrencyOutput struct {
	Body CurrencyResponseBody
}

type SetCurrencyInput struct {
	Body struct {
		Code string `json:"code" minLength:"3" maxLength:"3" doc:"ISO 4217 code"`
	}
}

type currencySetting interface {
	Currency(ctx context.Context) (string, error)
	SetCurrency(ctx context.Context, code string) (string, error)
}

// CurrencyHandler reads and changes the display currency. Amounts are never
// converted; only their formatting changes.
type CurrencyHandler struct {
	SettingsService currencySetting
}

func NewCurrencyHandler(svc currencySetting) *CurrencyHandler {
	return &CurrencyHandler{SettingsService: svc}
}

func (h *CurrencyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-currency",
		Method:      http.MethodGet,
		Path:        "/v1/settings/currency",
		Summary:     "Get display currency",
		Tags:        []string{"Settings"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "set-currency",
		Method:      http.MethodPut,
		Path:        "/v1/settings/currency",
		Summary:     "Set display currency",
		Tags:        []string{"Settings"},
	}, h.set)
}

func currencyOutput(code string) *CurrencyOutput {
	return &CurrencyOutput{Body: CurrencyResponseBody{Code: code, Supported: currency.Supported}}
}

func (h *CurrencyHandler) get(ctx context.Context, _ *struct{}) (*CurrencyOutput, error) {
	code, err := h.SettingsService.Currency(ctx)
	if err != nil {
		return nil, httpmodel.Error("failed to load currency", err)
	}
	return currencyOutput(code), nil
}

func (h *CurrencyHandler) set(ctx context.Context, input *SetCurrencyInput) (*CurrencyOutput, error) {
	code, err := h.SettingsService.SetCurrency(ctx, input.Body.Code)
	if err != nil {
		return nil, httpmodel.Error("failed to set currency", err)
	}
	return currencyOutput(code), nil
}
