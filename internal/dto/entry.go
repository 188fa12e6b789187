package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealthfolio/networth_backend/internal/core/domain"
)

// CreateEntryRequest defines the data needed to create a new asset or debt.
// Category membership in the kind's fixed set is checked by the service.
type CreateEntryRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Value    decimal.Decimal `json:"value" binding:"required"`
	Currency string          `json:"currency" binding:"required,uppercase,len=3"`
	Comments string          `json:"comments"`
}

// UpdateEntryRequest defines the data allowed for updating an entry.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateEntryRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Value    *decimal.Decimal `json:"value"`
	Currency *string          `json:"currency"`
	Comments *string          `json:"comments"`
}

// EntryResponse defines the data returned for an asset or debt.
type EntryResponse struct {
	EntryID     string          `json:"entryID"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Value       decimal.Decimal `json:"value"`
	Currency    string          `json:"currency"`
	Comments    string          `json:"comments,omitempty"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// ListEntriesResponse wraps the list of entries for one table.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain.Entry to EntryResponse DTO
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:     e.EntryID,
		Name:        e.Name,
		Category:    e.Category,
		Value:       e.Value,
		Currency:    e.Currency,
		Comments:    e.Comments,
		LastUpdated: e.LastUpdated,
	}
}

// ToListEntriesResponse converts a slice of domain.Entry to ListEntriesResponse DTO
func ToListEntriesResponse(entries []domain.Entry) ListEntriesResponse {
	res := make([]EntryResponse, len(entries))
	for i := range entries {
		res[i] = ToEntryResponse(&entries[i])
	}
	return ListEntriesResponse{Entries: res}
}
