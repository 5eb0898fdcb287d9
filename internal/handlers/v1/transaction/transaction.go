package transaction

import (
	"github.com/carson-networks/budget-allocator/internal/currency"
	"github.com/carson-networks/budget-allocator/internal/handlers/httpmodel"
	"github.com/carson-networks/budget-allocator/internal/ledger"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID            string `json:"id" doc:"Transaction UUID"`
	Type          string `json:"type" doc:"income, expense or savings"`
	Amount        string `json:"amount" doc:"Decimal amount"`
	Display       string `json:"display,omitempty" doc:"Amount formatted in the display currency"`
	Category      string `json:"category" doc:"Category the transaction is booked under"`
	Title         string `json:"title" doc:"Short description"`
	Date          string `json:"date" doc:"Calendar date, YYYY-MM-DD"`
	SavingsStatus string `json:"savingsStatus,omitempty" doc:"For incomes: allocated or unallocated"`
}

func fromLedger(tx ledger.Transaction, code string) Transaction {
	out := Transaction{
		ID:       tx.ID.String(),
		Type:     string(tx.Type),
		Amount:   httpmodel.Money(tx.Amount),
		Category: tx.Category,
		Title:    tx.Title,
		Date:     tx.Date.Format(httpmodel.DateLayout),
	}
	if code != "" {
		out.Display = currency.Format(tx.Amount, code)
	}
	return out
}
