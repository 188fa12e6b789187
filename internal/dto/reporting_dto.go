package dto

import (
	"github.com/shopspring/decimal"
)

// CategoryTotalResponse is one slice of an allocation breakdown, in the
// display currency, with its share of the kind's total.
type CategoryTotalResponse struct {
	Category   string          `json:"category"`
	Total      decimal.Decimal `json:"total"`
	Percentage decimal.Decimal `json:"percentage"`
}

// SummaryResponse is the dashboard payload: converted totals and the
// allocation breakdowns ranked by converted value descending.
type SummaryResponse struct {
	DisplayCurrency string                  `json:"displayCurrency"`
	TotalAssets     decimal.Decimal         `json:"totalAssets"`
	TotalDebts      decimal.Decimal         `json:"totalDebts"`
	NetWorth        decimal.Decimal         `json:"netWorth"`
	AssetAllocation []CategoryTotalResponse `json:"assetAllocation"`
	DebtAllocation  []CategoryTotalResponse `json:"debtAllocation"`
}
