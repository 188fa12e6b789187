package services

import (
	"context"

	"github.com/wealthfolio/networth_backend/internal/core/domain"
	"github.com/wealthfolio/networth_backend/internal/dto"
)

// EntrySvcFacade covers one entry table. The application wires two instances,
// one over assets and one over debts; they differ only in table and category set.
type EntrySvcFacade interface {
	// Kind reports which table this service fronts.
	Kind() domain.EntryKind

	// ListEntries returns all of the owner's entries, most recently updated first.
	ListEntries(ctx context.Context, ownerID string) ([]domain.Entry, error)

	// CreateEntry validates and persists a new entry for the owner.
	CreateEntry(ctx context.Context, ownerID string, req dto.CreateEntryRequest) (*domain.Entry, error)

	// UpdateEntry applies the provided fields to the owner's entry. Last write wins.
	UpdateEntry(ctx context.Context, ownerID, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error)

	// DeleteEntry removes the owner's entry.
	DeleteEntry(ctx context.Context, ownerID, entryID string) error
}
