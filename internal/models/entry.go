package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is the database representation of one asset or debt row.
// The same shape backs both the assets and the debts table.
type Entry struct {
	EntryID     string          `db:"entry_id"`
	OwnerID     string          `db:"owner_id"`
	Name        string          `db:"name"`
	Category    string          `db:"category"`
	Value       decimal.Decimal `db:"value"`
	Currency    string          `db:"currency"`
	Comments    sql.NullString  `db:"comments"`
	LastUpdated time.Time       `db:"last_updated"`
	AuditFields
}
