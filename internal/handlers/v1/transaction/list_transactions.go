package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-allocator/internal/handlers/httpmodel"
	"github.com/carson-networks/budget-allocator/internal/logging"
	"github.com/carson-networks/budget-allocator/internal/service"
)

// TransactionGroup is every transaction of one category, newest first.
type TransactionGroup struct {
	Category     string        `json:"category"`
	Transactions []Transaction `json:"transactions"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Currency string             `json:"currency" doc:"Display currency code"`
	Groups   []TransactionGroup `json:"groups" doc:"Transactions grouped by category"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context) (*service.TransactionList, error)
}

// ListTransactionsHandler handles GET /v1/transaction.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transaction",
		Summary:     "List transactions",
		Description: "Returns every transaction grouped by category, newest first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, _ *struct{}) (*ListTransactionsOutput, error) {
	list, err := h.TransactionService.ListTransactions(ctx)
	if err != nil {
		return nil, httpmodel.Error("failed to list transactions", err)
	}

	resp := ListTransactionsResponseBody{
		Currency: list.Currency,
		Groups:   make([]TransactionGroup, len(list.Groups)),
	}
	count := 0
	for i, group := range list.Groups {
		out := TransactionGroup{Category: group.Category, Transactions: make([]Transaction, len(group.Transactions))}
		for j, tx := range group.Transactions {
			out.Transactions[j] = fromLedger(tx, list.Currency)
			if status, ok := list.IncomeStatus[tx.ID]; ok {
				out.Transactions[j].SavingsStatus = string(status)
			}
		}
		count += len(group.Transactions)
		resp.Groups[i] = out
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionCount", count)
	}
	return &ListTransactionsOutput{Body: resp}, nil
}
