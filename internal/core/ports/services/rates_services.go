package services

import (
	"context"
	"time"

	"github.com/wealthfolio/networth_backend/internal/fx"
)

// RatesSvcFacade exposes the live rate table.
type RatesSvcFacade interface {
	// Rates returns the current USD-relative rate table snapshot.
	Rates() fx.RateTable

	// RefreshNow forces a fetch outside the periodic schedule. Failures leave
	// the current table in place.
	RefreshNow(ctx context.Context) error

	// StartRefresher runs the periodic refresh loop until ctx is cancelled.
	// It blocks, so callers run it in its own goroutine.
	StartRefresher(ctx context.Context, interval time.Duration)
}
