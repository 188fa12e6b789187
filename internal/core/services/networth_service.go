package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wealthfolio/networth_backend/internal/core/domain"
	portsrepo "github.com/wealthfolio/networth_backend/internal/core/ports/repositories"
	portssvc "github.com/wealthfolio/networth_backend/internal/core/ports/services"
)

// netWorthService appends and lists net worth snapshots. Totals are computed
// from the owner's current entries at snapshot time, not supplied by the client.
type netWorthService struct {
	netWorthRepo portsrepo.NetWorthRepositoryFacade
	reporting    portssvc.ReportingSvcFacade
}

// NewNetWorthService creates a new net worth history service.
func NewNetWorthService(netWorthRepo portsrepo.NetWorthRepositoryFacade, reporting portssvc.ReportingSvcFacade) portssvc.NetWorthSvcFacade {
	return &netWorthService{
		netWorthRepo: netWorthRepo,
		reporting:    reporting,
	}
}

var _ portssvc.NetWorthSvcFacade = (*netWorthService)(nil)

func (s *netWorthService) CreateSnapshot(ctx context.Context, ownerID, baseCurrency string) (*domain.NetWorthRecord, error) {
	summary, err := s.reporting.Summary(ctx, ownerID, baseCurrency)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := domain.NetWorthRecord{
		RecordID:     uuid.NewString(),
		OwnerID:      ownerID,
		Date:         now,
		TotalAssets:  summary.TotalAssets,
		TotalDebts:   summary.TotalDebts,
		NetWorth:     summary.NetWorth,
		BaseCurrency: summary.DisplayCurrency,
		CreatedAt:    now,
	}

	if err := s.netWorthRepo.AppendRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to append net worth snapshot in service: %w", err)
	}
	return &record, nil
}

func (s *netWorthService) ListHistory(ctx context.Context, ownerID string, since time.Time) ([]domain.NetWorthRecord, error) {
	records, err := s.netWorthRepo.FindRecordsByOwner(ctx, ownerID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list net worth history in service: %w", err)
	}
	return records, nil
}
