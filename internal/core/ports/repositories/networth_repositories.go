package repositories

import (
	"context"
	"time"

	"github.com/wealthfolio/networth_backend/internal/core/domain"
)

// NetWorthRepositoryFacade covers the append-only net_worth_history table.
type NetWorthRepositoryFacade interface {
	// AppendRecord persists a new snapshot row.
	AppendRecord(ctx context.Context, record domain.NetWorthRecord) error

	// FindRecordsByOwner retrieves an owner's snapshots in date-ascending
	// order. A non-zero since narrows the series to records on or after it.
	FindRecordsByOwner(ctx context.Context, ownerID string, since time.Time) ([]domain.NetWorthRecord, error)
}
