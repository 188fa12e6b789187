package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NetWorthRecord is a point-in-time snapshot of a user's totals.
// Records are append-only; there is no update or delete path.
type NetWorthRecord struct {
	RecordID     string          `json:"recordID"`
	OwnerID      string          `json:"ownerID"`
	Date         time.Time       `json:"date"`
	TotalAssets  decimal.Decimal `json:"totalAssets"`
	TotalDebts   decimal.Decimal `json:"totalDebts"`
	NetWorth     decimal.Decimal `json:"netWorth"`
	BaseCurrency string          `json:"baseCurrency"`
	CreatedAt    time.Time       `json:"createdAt"`
}
