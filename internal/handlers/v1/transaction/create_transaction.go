package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-allocator/internal/handlers/httpmodel"
	"github.com/carson-networks/budget-allocator/internal/ledger"
	"github.com/carson-networks/budget-allocator/internal/logging"
	"github.com/carson-networks/budget-allocator/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Type     string `json:"type" required:"true" enum:"income,expense,savings" doc:"Transaction type"`
	Amount   string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Category string `json:"category" required:"true" minLength:"1" doc:"Category name"`
	Title    string `json:"title" required:"true" minLength:"1" doc:"Short description"`
	Date     string `json:"date,omitempty" format:"date" doc:"Calendar date YYYY-MM-DD, defaults to today"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the stored transaction with any warnings.
type CreateTransactionResponse struct {
	Transaction Transaction `json:"transaction"`
	Advisories  []string    `json:"advisories" doc:"Non-blocking warnings: no_income, no_budget, over_budget"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body CreateTransactionResponse
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	AddTransaction(ctx context.Context, in service.NewTransaction) (ledger.Transaction, []ledger.Advisory, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Records an income, expense or savings transaction.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input.
// Schema validation has already checked type, presence and date format.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.NewTransaction, error) {
	amount, err := httpmodel.ParseAmount("amount", input.Body.Amount)
	if err != nil {
		return service.NewTransaction{}, err
	}

	var date time.Time
	if input.Body.Date != "" {
		date, err = time.Parse(httpmodel.DateLayout, input.Body.Date)
		if err != nil {
			return service.NewTransaction{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	return service.NewTransaction{
		Type:     ledger.TransactionType(input.Body.Type),
		Amount:   amount,
		Category: input.Body.Category,
		Title:    input.Body.Title,
		Date:     date,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	in, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	tx, advice, err := h.TransactionService.AddTransaction(ctx, in)
	if err != nil {
		return nil, httpmodel.Error("failed to create transaction", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionID", tx.ID.String())
		logData.AddData("advisoryCount", len(advice))
	}

	resp := CreateTransactionResponse{
		Transaction: fromLedger(tx, ""),
		Advisories:  make([]string, len(advice)),
	}
	for i, a := range advice {
		resp.Advisories[i] = string(a)
	}
	return &CreateTransactionOutput{Body: resp}, nil
}
