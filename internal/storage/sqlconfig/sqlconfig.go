// Package sqlconfig maps the PostgreSQL tables onto engine types. Queries are
// built with bob's psql dialect and scanned with stephenafamo/scan.
package sqlconfig

import (
	"errors"
)

// ErrNotFound is returned when a lookup or delete matches no row.
var ErrNotFound = errors.New("not found")

const (
	transactionsTable       = "transactions"
	categoryBudgetsTable    = "category_budgets"
	savingsAllocationsTable = "savings_allocations"
	plannedSavingsTable     = "planned_savings"
	settingsTable           = "settings"
)
