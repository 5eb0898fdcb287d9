package amount

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Entry is one category of a Map.
type Entry struct {
	Key   string
	Value decimal.Decimal
}

// Map is an ordered category to value mapping. The order is the order
// categories were declared in, which several engine rules depend on.
//
// Methods never modify the receiver; mutating helpers return a new Map.
type Map []Entry

// FromPairs builds a Map from alternating key/value string pairs.
// It panics on malformed input and is intended for tables and tests.
func FromPairs(pairs ...string) Map {
	if len(pairs)%2 != 0 {
		panic("amount.FromPairs: odd number of arguments")
	}
	m := make(Map, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		m = append(m, Entry{Key: pairs[i], Value: decimal.RequireFromString(pairs[i+1])})
	}
	return m
}

func (m Map) index(key string) int {
	for i, e := range m {
		if e.Key == key {
			return i
		}
	}
	return -1
}

// Get returns the value for key and whether it is present.
func (m Map) Get(key string) (decimal.Decimal, bool) {
	if i := m.index(key); i >= 0 {
		return m[i].Value, true
	}
	return decimal.Zero, false
}

// At returns the value for key, or zero when absent.
func (m Map) At(key string) decimal.Decimal {
	v, _ := m.Get(key)
	return v
}

// Has reports whether key is present.
func (m Map) Has(key string) bool {
	return m.index(key) >= 0
}

// Keys returns the keys in declared order.
func (m Map) Keys() []string {
	keys := make([]string, len(m))
	for i, e := range m {
		keys[i] = e.Key
	}
	return keys
}

// Sum adds up every value.
func (m Map) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, e := range m {
		total = total.Add(e.Value)
	}
	return total
}

// Clone returns a copy that shares no backing array with m.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	copy(out, m)
	return out
}

// With returns a copy of m with key set to value. New keys are appended.
func (m Map) With(key string, value decimal.Decimal) Map {
	out := m.Clone()
	if i := out.index(key); i >= 0 {
		out[i].Value = value
		return out
	}
	return append(out, Entry{Key: key, Value: value})
}

// Add returns a copy of m with value added to whatever key already holds.
func (m Map) Add(key string, value decimal.Decimal) Map {
	return m.With(key, m.At(key).Add(value))
}

// Merge returns a copy of m overwritten key by key with updates.
// Keys only present in m are kept; keys only present in updates are appended.
func (m Map) Merge(updates Map) Map {
	out := m.Clone()
	for _, e := range updates {
		out = out.With(e.Key, e.Value)
	}
	return out
}

// AsStrings renders every value with its exact decimal string.
func (m Map) AsStrings() map[string]string {
	out := make(map[string]string, len(m))
	for _, e := range m {
		out[e.Key] = e.Value.String()
	}
	return out
}

// MarshalJSON encodes m as a JSON object whose members keep the declared
// order and whose values are plain numbers.
func (m Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(e.Value.String())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping member order.
// Values may be numbers or numeric strings.
func (m *Map) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("amount.Map: expected object, got %v", tok)
	}

	out := Map{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("amount.Map: unexpected key %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var value decimal.Decimal
		if err := value.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("amount.Map: value for %q: %w", key, err)
		}
		out = out.With(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = out
	return nil
}

// Value implements driver.Valuer so a Map can be stored in a JSON column.
// Use json rather than jsonb in Postgres, jsonb reorders keys.
func (m Map) Value() (driver.Value, error) {
	return m.MarshalJSON()
}

// Scan implements sql.Scanner for JSON columns.
func (m *Map) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return m.UnmarshalJSON(v)
	case string:
		return m.UnmarshalJSON([]byte(v))
	default:
		return errors.New("amount.Map: unsupported scan type")
	}
}
