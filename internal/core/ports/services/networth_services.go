package services

import (
	"context"
	"time"

	"github.com/wealthfolio/networth_backend/internal/core/domain"
)

// NetWorthSvcFacade covers the append-only net worth history.
type NetWorthSvcFacade interface {
	// CreateSnapshot computes the owner's current totals in the base currency
	// and appends a NetWorthRecord. There is no update or delete.
	CreateSnapshot(ctx context.Context, ownerID, baseCurrency string) (*domain.NetWorthRecord, error)

	// ListHistory returns the owner's snapshots date-ascending; a non-zero
	// since narrows the series.
	ListHistory(ctx context.Context, ownerID string, since time.Time) ([]domain.NetWorthRecord, error)
}
