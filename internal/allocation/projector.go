package allocation

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-allocator/internal/amount"
)

// Project converts every share of a into an absolute amount of base.
// Each amount is rounded on its own, so the result may drift from base by a
// few cents; that drift is kept as is.
func Project(base decimal.Decimal, a Allocation) amount.Map {
	out := make(amount.Map, 0, len(a))
	for _, e := range a {
		out = append(out, amount.Entry{
			Key:   e.Key,
			Value: amount.Round2(base.Mul(e.Value).Div(amount.Hundred)),
		})
	}
	return out
}
