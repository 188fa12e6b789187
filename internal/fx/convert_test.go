package fx_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthfolio/networth_backend/internal/fx"
)

func TestConvert_Identity(t *testing.T) {
	rates := fx.DefaultRates()
	amount := decimal.RequireFromString("123.456")

	got, err := fx.Convert(amount, "EUR", "EUR", rates)

	require.NoError(t, err)
	// Identity conversion must not even round.
	assert.True(t, got.Equal(amount), "got %s", got)
}

func TestConvert_UsdToEur(t *testing.T) {
	rates := fx.DefaultRates()

	got, err := fx.Convert(decimal.NewFromInt(100), "USD", "EUR", rates)

	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("92")), "got %s", got)
}

func TestConvert_EurToUsd(t *testing.T) {
	rates := fx.DefaultRates()

	got, err := fx.Convert(decimal.NewFromInt(50), "EUR", "USD", rates)

	require.NoError(t, err)
	// 50 / 0.92 = 54.3478... -> 54.35
	assert.True(t, got.Equal(decimal.RequireFromString("54.35")), "got %s", got)
}

func TestConvert_RoundTripWithinTolerance(t *testing.T) {
	rates := fx.DefaultRates()
	tolerance := decimal.RequireFromString("0.01")

	pairs := [][2]string{{"USD", "EUR"}, {"EUR", "RON"}, {"RON", "USD"}, {"USD", "RON"}}
	amounts := []string{"0.01", "1", "99.99", "12345.67"}

	for _, pair := range pairs {
		for _, a := range amounts {
			amount := decimal.RequireFromString(a)
			there, err := fx.Convert(amount, pair[0], pair[1], rates)
			require.NoError(t, err)
			back, err := fx.Convert(there, pair[1], pair[0], rates)
			require.NoError(t, err)

			diff := back.Sub(amount).Abs()
			assert.True(t, diff.LessThanOrEqual(tolerance),
				"%s %s->%s->%s drifted by %s", a, pair[0], pair[1], pair[0], diff)
		}
	}
}

func TestConvert_UnknownCurrency(t *testing.T) {
	rates := fx.DefaultRates()

	_, err := fx.Convert(decimal.NewFromInt(10), "XXX", "USD", rates)
	assert.ErrorIs(t, err, fx.ErrUnknownCurrency)

	_, err = fx.Convert(decimal.NewFromInt(10), "USD", "XXX", rates)
	assert.ErrorIs(t, err, fx.ErrUnknownCurrency)
}

func TestTable_ReplacePinsUSDAndSwapsWholesale(t *testing.T) {
	table := fx.NewTable()
	require.Contains(t, table.Snapshot(), "RON")

	table.Replace(fx.RateTable{
		"EUR": decimal.RequireFromString("0.95"),
		"GBP": decimal.RequireFromString("0.79"),
	})

	snapshot := table.Snapshot()
	assert.True(t, snapshot["USD"].Equal(decimal.NewFromInt(1)))
	assert.True(t, snapshot["EUR"].Equal(decimal.RequireFromString("0.95")))
	// Wholesale replacement: the old RON rate is gone, not merged.
	assert.NotContains(t, snapshot, "RON")
}
