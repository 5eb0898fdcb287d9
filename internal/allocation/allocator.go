// Package allocation keeps a set of named percentage shares summing to 100
// and projects such a set onto an absolute base amount.
package allocation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-allocator/internal/amount"
)

// Allocation maps a category key to its percentage share. Declared order
// matters: rounding residue always lands on the first redistributed key.
type Allocation = amount.Map

// ErrUnbalanced is reported when an allocation does not sum to 100.
var ErrUnbalanced = errors.New("allocation does not sum to 100")

// Redistribute sets key to value (clamped to [0,100]) and spreads the rest of
// the hundred over the other keys in proportion to their current weight.
//
// When key is the only category the result cannot be rebalanced; it is still
// returned, together with ErrUnbalanced if value is not 100. A starting set
// that is already off balance is not re-normalised first.
func Redistribute(current Allocation, key string, value decimal.Decimal) (Allocation, error) {
	target := amount.ClampPercent(value)

	var others []string
	sumOthers := decimal.Zero
	for _, e := range current {
		if e.Key == key {
			continue
		}
		others = append(others, e.Key)
		sumOthers = sumOthers.Add(e.Value)
	}

	result := current.With(key, target)
	if len(others) == 0 {
		if !target.Equal(amount.Hundred) {
			return result, fmt.Errorf("%w: single category %q at %s", ErrUnbalanced, key, target)
		}
		return result, nil
	}

	if target.Add(sumOthers).Equal(amount.Hundred) {
		return result, nil
	}

	rest := amount.Hundred.Sub(target)
	newSum := target
	for _, other := range others {
		var share decimal.Decimal
		if sumOthers.IsZero() {
			share = amount.Round2(rest.Div(decimal.NewFromInt(int64(len(others)))))
		} else {
			share = amount.Round2(current.At(other).Div(sumOthers).Mul(rest))
			share = decimal.Max(share, decimal.Zero)
		}
		result = result.With(other, share)
		newSum = newSum.Add(share)
	}

	if residual := amount.Hundred.Sub(newSum); !residual.IsZero() {
		result = result.Add(others[0], residual)
	}
	return result, nil
}

// Normalize clamps every share into [0,100], keeping key order. It does not
// rebalance the set.
func Normalize(a Allocation) Allocation {
	out := make(Allocation, 0, len(a))
	for _, e := range a {
		out = append(out, amount.Entry{Key: e.Key, Value: amount.ClampPercent(amount.ToAmount(e.Value))})
	}
	return out
}

// Validate reports ErrUnbalanced when a does not sum to 100 within tolerance.
func Validate(a Allocation) error {
	if amount.SumsToHundred(a) {
		return nil
	}
	return fmt.Errorf("%w: total is %s", ErrUnbalanced, a.Sum())
}
