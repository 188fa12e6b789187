package repositories

import (
	"context"

	"github.com/wealthfolio/networth_backend/internal/core/domain"
)

// EntryReader defines read operations over one entry table, always scoped to
// an owner. Rows belonging to other owners are invisible, not forbidden.
type EntryReader interface {
	// FindEntryByID retrieves one entry owned by ownerID.
	FindEntryByID(ctx context.Context, ownerID, entryID string) (*domain.Entry, error)

	// FindEntriesByOwner retrieves all entries owned by ownerID,
	// most recently updated first.
	FindEntriesByOwner(ctx context.Context, ownerID string) ([]domain.Entry, error)
}

// EntryWriter defines write operations over one entry table.
type EntryWriter interface {
	// SaveEntry persists a new entry.
	SaveEntry(ctx context.Context, entry domain.Entry) error

	// UpdateEntry overwrites an existing entry owned by entry.OwnerID.
	// Last write wins; there is no optimistic concurrency check.
	UpdateEntry(ctx context.Context, entry domain.Entry) error

	// DeleteEntry removes an entry owned by ownerID. Hard delete.
	DeleteEntry(ctx context.Context, ownerID, entryID string) error
}

// EntryRepositoryFacade combines the entry repository interfaces.
// One instance exists per table (assets, debts).
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
