package fx_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthfolio/networth_backend/internal/fx"
)

func TestTotalsByCategory_MixedCurrencies(t *testing.T) {
	rates := fx.DefaultRates()
	items := []fx.Valuation{
		{Category: "cash", Value: decimal.NewFromInt(100), Currency: "USD"},
		{Category: "cash", Value: decimal.NewFromInt(50), Currency: "EUR"},
	}

	breakdown, total, err := fx.TotalsByCategory(items, "USD", rates)

	require.NoError(t, err)
	require.Len(t, breakdown, 1)
	// 100 + 50/0.92 = 100 + 54.35 = 154.35
	assert.Equal(t, "cash", breakdown[0].Category)
	assert.True(t, breakdown[0].Total.Equal(decimal.RequireFromString("154.35")), "got %s", breakdown[0].Total)
	assert.True(t, total.Equal(decimal.RequireFromString("154.35")))
}

func TestTotalsByCategory_PartitionSumsMatchGrandTotal(t *testing.T) {
	rates := fx.DefaultRates()
	items := []fx.Valuation{
		{Category: "investment", Value: decimal.RequireFromString("1200.50"), Currency: "USD"},
		{Category: "investment", Value: decimal.RequireFromString("300"), Currency: "RON"},
		{Category: "real_estate", Value: decimal.RequireFromString("250000"), Currency: "EUR"},
		{Category: "cash", Value: decimal.RequireFromString("42.42"), Currency: "USD"},
	}

	breakdown, total, err := fx.TotalsByCategory(items, "EUR", rates)

	require.NoError(t, err)
	require.Len(t, breakdown, 3)

	sum := decimal.Zero
	for _, ct := range breakdown {
		sum = sum.Add(ct.Total)
	}
	assert.True(t, sum.Equal(total), "category sums %s != grand total %s", sum, total)
}

func TestTotalsByCategory_SortedDescending(t *testing.T) {
	rates := fx.DefaultRates()
	items := []fx.Valuation{
		{Category: "cash", Value: decimal.NewFromInt(10), Currency: "USD"},
		{Category: "vehicle", Value: decimal.NewFromInt(5000), Currency: "USD"},
		{Category: "investment", Value: decimal.NewFromInt(250), Currency: "USD"},
	}

	breakdown, _, err := fx.TotalsByCategory(items, "USD", rates)

	require.NoError(t, err)
	require.Len(t, breakdown, 3)
	assert.Equal(t, "vehicle", breakdown[0].Category)
	assert.Equal(t, "investment", breakdown[1].Category)
	assert.Equal(t, "cash", breakdown[2].Category)
}

func TestTotalsByCategory_Empty(t *testing.T) {
	breakdown, total, err := fx.TotalsByCategory(nil, "USD", fx.DefaultRates())

	require.NoError(t, err)
	assert.Empty(t, breakdown)
	assert.True(t, total.IsZero())
}

func TestTotalsByCategory_UnknownCurrencyPropagates(t *testing.T) {
	items := []fx.Valuation{
		{Category: "cash", Value: decimal.NewFromInt(10), Currency: "XYZ"},
	}

	_, _, err := fx.TotalsByCategory(items, "USD", fx.DefaultRates())

	assert.ErrorIs(t, err, fx.ErrUnknownCurrency)
}
