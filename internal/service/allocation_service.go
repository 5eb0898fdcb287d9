package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-allocator/internal/allocation"
	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/savings"
)

// ErrEmptyKey is returned when a redistribution names no category.
var ErrEmptyKey = errors.New("category key must not be empty")

// AllocationPreview is a percentage set and whether it sums to 100.
type AllocationPreview struct {
	Allocation allocation.Allocation
	Balanced   bool
}

// AllocationService exposes the pure allocation math. It touches no storage.
type AllocationService struct{}

func NewAllocationService() *AllocationService {
	return &AllocationService{}
}

// Redistribute sets one share and rebalances the others. An empty current
// set starts from the default savings split; shares outside [0,100] are
// clamped first.
func (s *AllocationService) Redistribute(current amount.Map, key string, value decimal.Decimal) (*AllocationPreview, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrEmptyKey
	}
	if len(current) == 0 {
		current = savings.DefaultAllocation()
	}
	current = allocation.Normalize(current)

	result, err := allocation.Redistribute(current, key, value)
	if err != nil && !errors.Is(err, allocation.ErrUnbalanced) {
		return nil, fmt.Errorf("failed to redistribute: %w", err)
	}
	return &AllocationPreview{Allocation: result, Balanced: err == nil}, nil
}

// Project turns percentage shares into amounts of base.
func (s *AllocationService) Project(base decimal.Decimal, shares amount.Map) (amount.Map, bool) {
	return allocation.Project(base, shares), allocation.Validate(shares) == nil
}
