package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// NetWorthRecord is the database representation of one net_worth_history row.
// The table is append-only.
type NetWorthRecord struct {
	RecordID     string          `db:"record_id"`
	OwnerID      string          `db:"owner_id"`
	Date         time.Time       `db:"date"`
	TotalAssets  decimal.Decimal `db:"total_assets"`
	TotalDebts   decimal.Decimal `db:"total_debts"`
	NetWorth     decimal.Decimal `db:"net_worth"`
	BaseCurrency string          `db:"base_currency"`
	CreatedAt    time.Time       `db:"created_at"`
}
