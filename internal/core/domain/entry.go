package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind distinguishes the two entry tables.
type EntryKind string

const (
	KindAsset EntryKind = "asset"
	KindDebt  EntryKind = "debt"
)

// Entry is a single asset or debt owned by one user.
// Value is stored in the entry's own currency; display conversion happens at read time.
type Entry struct {
	EntryID     string          `json:"entryID"`
	OwnerID     string          `json:"ownerID"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Value       decimal.Decimal `json:"value"`
	Currency    string          `json:"currency"` // ISO 4217 code
	Comments    string          `json:"comments,omitempty"`
	LastUpdated time.Time       `json:"lastUpdated"`
	AuditFields
}

// AssetCategories is the fixed category set for asset entries.
var AssetCategories = []string{
	"cash",
	"bank_deposit",
	"savings_account",
	"investment",
	"real_estate",
	"vehicle",
	"other",
}

// DebtCategories is the fixed category set for debt entries.
var DebtCategories = []string{
	"credit_card",
	"student_loan",
	"mortgage",
	"auto_loan",
	"personal_loan",
	"medical_debt",
	"tax_debt",
	"other",
}

// CategoriesFor returns the allowed category set for a kind.
func CategoriesFor(kind EntryKind) []string {
	if kind == KindDebt {
		return DebtCategories
	}
	return AssetCategories
}

// ValidCategory reports whether category belongs to the kind's fixed set.
func ValidCategory(kind EntryKind, category string) bool {
	for _, c := range CategoriesFor(kind) {
		if c == category {
			return true
		}
	}
	return false
}
