package services

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/wealthfolio/networth_backend/internal/core/ports/services"
	"github.com/wealthfolio/networth_backend/internal/fx"
)

// ratesService owns the live rate table and its periodic refresh.
type ratesService struct {
	table   *fx.Table
	fetcher *fx.Fetcher
}

// NewRatesService creates a rates service seeded with the static defaults.
func NewRatesService(ratesAPIURL string, logger *slog.Logger) portssvc.RatesSvcFacade {
	table := fx.NewTable()
	return &ratesService{
		table:   table,
		fetcher: fx.NewFetcher(ratesAPIURL, table, logger),
	}
}

var _ portssvc.RatesSvcFacade = (*ratesService)(nil)

func (s *ratesService) Rates() fx.RateTable {
	return s.table.Snapshot()
}

func (s *ratesService) RefreshNow(ctx context.Context) error {
	return s.fetcher.Refresh(ctx)
}

// StartRefresher runs the periodic refresh loop until ctx is cancelled.
// It blocks, so callers run it in its own goroutine.
func (s *ratesService) StartRefresher(ctx context.Context, interval time.Duration) {
	s.fetcher.Run(ctx, interval)
}
