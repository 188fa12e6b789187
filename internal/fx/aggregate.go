package fx

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Valuation is the slice of an entry the aggregation cares about.
type Valuation struct {
	Category string
	Value    decimal.Decimal
	Currency string
}

// CategoryTotal is one slice of an allocation breakdown, in the display currency.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// TotalsByCategory converts every valuation into the display currency and sums
// them per category. The breakdown is sorted by converted total descending
// (category name as a stable tie-break) and the grand total is the sum of the
// category totals.
func TotalsByCategory(items []Valuation, display string, rates RateTable) ([]CategoryTotal, decimal.Decimal, error) {
	byCategory := make(map[string]decimal.Decimal)
	for _, item := range items {
		converted, err := Convert(item.Value, item.Currency, display, rates)
		if err != nil {
			return nil, decimal.Zero, err
		}
		byCategory[item.Category] = byCategory[item.Category].Add(converted)
	}

	breakdown := make([]CategoryTotal, 0, len(byCategory))
	total := decimal.Zero
	for category, sum := range byCategory {
		breakdown = append(breakdown, CategoryTotal{Category: category, Total: sum})
		total = total.Add(sum)
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Total.Equal(breakdown[j].Total) {
			return breakdown[i].Total.GreaterThan(breakdown[j].Total)
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown, total, nil
}
