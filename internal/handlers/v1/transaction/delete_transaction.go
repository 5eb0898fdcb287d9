package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-allocator/internal/handlers/httpmodel"
)

type DeleteTransactionInput struct {
	ID string `path:"id" format:"uuid" doc:"Transaction UUID"`
}

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

// DeleteTransactionHandler handles DELETE /v1/transaction/{id}. Savings
// allocations made against a deleted income stay on record.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transaction/{id}",
		Summary:       "Delete transaction",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*struct{}, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	if err := h.TransactionService.DeleteTransaction(ctx, id); err != nil {
		return nil, httpmodel.Error("failed to delete transaction", err)
	}
	return nil, nil
}
