package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	code, err := Normalize(" eur ")
	require.NoError(t, err)
	assert.Equal(t, "EUR", code)

	_, err = Normalize("XYZ")
	assert.ErrorIs(t, err, ErrUnknownCurrency)

	_, err = Normalize("")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestSupportedAreKnownToMoney(t *testing.T) {
	for _, code := range Supported {
		_, err := Normalize(code)
		assert.NoError(t, err, code)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$1,234.57", Format(decimal.RequireFromString("1234.567"), "USD"))
	assert.Equal(t, "$5.00", Format(decimal.RequireFromString("5"), "nope"))
	assert.Contains(t, Format(decimal.RequireFromString("-20"), "USD"), "20.00")
}
