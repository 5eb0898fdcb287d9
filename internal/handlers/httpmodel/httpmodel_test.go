package httpmodel

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/ledger"
	"github.com/carson-networks/budget-allocator/internal/savings"
	"github.com/carson-networks/budget-allocator/internal/storage/sqlconfig"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.True(t, errors.As(err, &se))
	return se.GetStatus()
}

func TestError_Mapping(t *testing.T) {
	cases := map[error]int{
		fmt.Errorf("tx: %w", sqlconfig.ErrNotFound):                http.StatusNotFound,
		savings.ErrAlreadyAllocated:                                 http.StatusConflict,
		ledger.ErrCategoryExists:                                    http.StatusConflict,
		fmt.Errorf("%w: empty title", ledger.ErrInvalidTransaction): http.StatusBadRequest,
		savings.ErrNotIncome:                                        http.StatusBadRequest,
		errors.New("connection refused"):                            http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, statusOf(t, Error("failed", err)), err.Error())
	}
}

func TestToMap_KeepsOrder(t *testing.T) {
	m, err := ToMap("budgets", []AmountInput{{Key: "b", Amount: "2"}, {Key: "a", Amount: "1.5"}})

	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, m.Keys())
}

func TestToMap_BadAmount(t *testing.T) {
	_, err := ToMap("budgets", []AmountInput{{Key: "a", Amount: "lots"}})

	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestFromMap(t *testing.T) {
	entries := FromMap(amount.FromPairs("Food", "1234.5"), "USD")

	require.Len(t, entries, 1)
	assert.Equal(t, AmountEntry{Key: "Food", Amount: "1234.50", Display: "$1,234.50"}, entries[0])
	assert.Empty(t, FromMap(amount.FromPairs("Food", "1"), "")[0].Display)
}
