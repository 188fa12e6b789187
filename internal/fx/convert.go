// Package fx holds the currency conversion and allocation arithmetic.
// It is pure with respect to the rate table: callers inject a RateTable
// snapshot, so nothing here touches the network or the database.
package fx

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrUnknownCurrency indicates a code absent from the rate table.
var ErrUnknownCurrency = errors.New("unknown currency code")

// RateTable maps an ISO 4217 code to its value relative to USD
// (units of that currency per one USD). USD is always 1.
type RateTable map[string]decimal.Decimal

// DefaultRates returns the static fallback table used until a fetch succeeds.
func DefaultRates() RateTable {
	return RateTable{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.92"),
		"RON": decimal.RequireFromString("4.56"),
	}
}

// Convert converts amount from one currency to another using the given table:
// amount * rates[to] / rates[from], rounded to 2 decimal places.
// Converting a currency to itself returns the amount unchanged.
func Convert(amount decimal.Decimal, from, to string, rates RateTable) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	fromRate, ok := rates[from]
	if !ok || fromRate.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownCurrency, from)
	}
	toRate, ok := rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownCurrency, to)
	}
	return amount.Mul(toRate).Div(fromRate).Round(2), nil
}
