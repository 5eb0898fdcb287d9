// Package amount holds the numeric helpers shared by every part of the
// allocation engine: input parsing, 2-decimal rounding and percentage clamping.
package amount

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// Hundred is the total every percentage allocation must sum to.
	Hundred = decimal.NewFromInt(100)

	// Tolerance is the largest drift from Hundred still treated as balanced.
	Tolerance = decimal.RequireFromString("0.01")
)

// ToAmount parses user input into a non-negative amount.
//
// Strings may use either a dot or a comma as decimal separator. Anything that
// cannot be read as a finite, non-negative number yields zero.
func ToAmount(raw any) decimal.Decimal {
	var parsed decimal.Decimal

	switch v := raw.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		parsed = v
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero
		}
		parsed = *v
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
		if s == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		parsed = d
	case json.Number:
		return ToAmount(string(v))
	case float32:
		return fromFloat(float64(v))
	case float64:
		return fromFloat(v)
	default:
		rv := reflect.ValueOf(raw)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			parsed = decimal.NewFromInt(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			parsed = decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0)
		default:
			return decimal.Zero
		}
	}

	if parsed.IsNegative() {
		return decimal.Zero
	}
	return parsed
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// Round2 rounds to two decimal places, halves away from zero.
func Round2(x decimal.Decimal) decimal.Decimal {
	return x.Round(2)
}

// ClampPercent clamps x into [0, 100].
func ClampPercent(x decimal.Decimal) decimal.Decimal {
	if x.IsNegative() {
		return decimal.Zero
	}
	if x.GreaterThan(Hundred) {
		return Hundred
	}
	return x
}

// SumsToHundred reports whether the values of m add up to 100 within Tolerance.
func SumsToHundred(m Map) bool {
	return m.Sum().Sub(Hundred).Abs().LessThanOrEqual(Tolerance)
}

// Percent returns part as a percentage of whole, or zero when whole is not positive.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(Hundred)
}
