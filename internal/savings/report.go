package savings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-allocator/internal/allocation"
	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/ledger"
)

var (
	ErrTypeExists = errors.New("savings type already exists")
	ErrEmptyType  = errors.New("savings type name is empty")
)

// ReportLine is planned against done for one savings type.
type ReportLine struct {
	Type    string
	Planned decimal.Decimal
	Done    decimal.Decimal
}

// Report is the savings overview: one line per type plus the totals.
type Report struct {
	Lines        []ReportLine
	TotalPlanned decimal.Decimal
	TotalDone    decimal.Decimal
}

// BuildReport lines up the fixed savings types, then custom, then anything
// else that has a planned total.
func BuildReport(planned amount.Map, log []ledger.Transaction, custom []string) Report {
	types := append(Names(), custom...)
	for _, name := range planned.Keys() {
		if !contains(types, name) {
			types = append(types, name)
		}
	}

	report := Report{TotalPlanned: decimal.Zero, TotalDone: decimal.Zero}
	seen := make(map[string]bool, len(types))
	for _, name := range types {
		if seen[name] {
			continue
		}
		seen[name] = true

		line := ReportLine{Type: name, Planned: planned.At(name), Done: RealizedSavings(log, name)}
		report.Lines = append(report.Lines, line)
		report.TotalPlanned = report.TotalPlanned.Add(line.Planned)
		report.TotalDone = report.TotalDone.Add(line.Done)
	}
	return report
}

// AutoAllocatePlanned overwrites the planned totals of the fixed types with
// the default split of DefaultSavingsPercent of all income on record.
func AutoAllocatePlanned(planned amount.Map, log []ledger.Transaction) amount.Map {
	income := ledger.CalculateTotals(log).Income
	// Only the per-type amounts are rounded.
	base := income.Mul(decimal.NewFromInt(DefaultSavingsPercent)).Div(amount.Hundred)

	byName := make(amount.Map, 0, len(Categories))
	for _, e := range allocation.Project(base, DefaultAllocation()) {
		byName = append(byName, amount.Entry{Key: DisplayName(e.Key), Value: e.Value})
	}
	return planned.Merge(byName)
}

// AddType registers a custom savings type.
func AddType(custom []string, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return custom, ErrEmptyType
	}
	if contains(Names(), name) || contains(custom, name) {
		return custom, fmt.Errorf("%w: %s", ErrTypeExists, name)
	}
	out := make([]string, 0, len(custom)+1)
	out = append(out, custom...)
	return append(out, name), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
