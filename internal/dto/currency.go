package dto

import (
	"github.com/shopspring/decimal"

	"github.com/wealthfolio/networth_backend/internal/core/domain"
)

// CurrencyResponse defines the data returned for a supported currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
}

// ToListCurrencyResponse converts the static currency set to DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = CurrencyResponse{
			CurrencyCode: curr.CurrencyCode,
			Symbol:       curr.Symbol,
			Name:         curr.Name,
		}
	}
	return res
}

// RateTableResponse exposes the current USD-relative rate table.
type RateTableResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}
