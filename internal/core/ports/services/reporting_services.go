package services

import (
	"context"

	"github.com/wealthfolio/networth_backend/internal/dto"
)

// ReportingSvcFacade derives the dashboard aggregates from the owner's
// current entries. Nothing is cached; every call re-derives from the tables
// and the current rate table.
type ReportingSvcFacade interface {
	// Summary returns converted totals, net worth and both allocation
	// breakdowns in the display currency.
	Summary(ctx context.Context, ownerID, displayCurrency string) (*dto.SummaryResponse, error)
}
