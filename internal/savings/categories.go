package savings

import (
	"github.com/carson-networks/budget-allocator/internal/amount"
)

// Category ties an internal allocation key to the name users see and book
// savings transactions under.
type Category struct {
	Key  string
	Name string
}

// Categories is the fixed savings table, in display order. Allocation events
// are keyed by Key while planned and realized savings are keyed by Name.
var Categories = []Category{
	{Key: "stocks", Name: "Stocks"},
	{Key: "mutualFunds", Name: "Mutual Funds"},
	{Key: "gold", Name: "Gold"},
	{Key: "education", Name: "Education"},
	{Key: "vacation", Name: "Vacation"},
	{Key: "emergencyFunds", Name: "Emergency Funds"},
	{Key: "lifestyle", Name: "Gadget/Lifestyle"},
}

// DefaultSavingsPercent is the share of an income proposed for saving.
const DefaultSavingsPercent = 50

// DisplayName maps an allocation key to its display name. Keys outside the
// table are returned as they are.
func DisplayName(key string) string {
	for _, c := range Categories {
		if c.Key == key {
			return c.Name
		}
	}
	return key
}

// Names lists the display names of the fixed table.
func Names() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = c.Name
	}
	return names
}

// DefaultAllocation is the percentage split proposed for a new income.
func DefaultAllocation() amount.Map {
	return amount.FromPairs(
		"stocks", "20",
		"mutualFunds", "20",
		"gold", "20",
		"education", "10",
		"vacation", "5",
		"emergencyFunds", "20",
		"lifestyle", "5",
	)
}
