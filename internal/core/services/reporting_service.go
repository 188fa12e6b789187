package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wealthfolio/networth_backend/internal/apperrors"
	"github.com/wealthfolio/networth_backend/internal/core/domain"
	portsrepo "github.com/wealthfolio/networth_backend/internal/core/ports/repositories"
	portssvc "github.com/wealthfolio/networth_backend/internal/core/ports/services"
	"github.com/wealthfolio/networth_backend/internal/dto"
	"github.com/wealthfolio/networth_backend/internal/fx"
)

var oneHundred = decimal.NewFromInt(100)

// reportingService derives dashboard aggregates from the owner's entries and
// the current rate table. Nothing is cached between calls.
type reportingService struct {
	assetRepo portsrepo.EntryRepositoryFacade
	debtRepo  portsrepo.EntryRepositoryFacade
	rates     portssvc.RatesSvcFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(assetRepo, debtRepo portsrepo.EntryRepositoryFacade, rates portssvc.RatesSvcFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		assetRepo: assetRepo,
		debtRepo:  debtRepo,
		rates:     rates,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func toValuations(entries []domain.Entry) []fx.Valuation {
	vals := make([]fx.Valuation, len(entries))
	for i, e := range entries {
		vals[i] = fx.Valuation{Category: e.Category, Value: e.Value, Currency: e.Currency}
	}
	return vals
}

// toAllocation attaches percentage shares to a breakdown.
func toAllocation(breakdown []fx.CategoryTotal, total decimal.Decimal) []dto.CategoryTotalResponse {
	res := make([]dto.CategoryTotalResponse, len(breakdown))
	for i, ct := range breakdown {
		pct := decimal.Zero
		if total.IsPositive() {
			pct = ct.Total.Mul(oneHundred).Div(total).Round(2)
		}
		res[i] = dto.CategoryTotalResponse{
			Category:   ct.Category,
			Total:      ct.Total,
			Percentage: pct,
		}
	}
	return res
}

func (s *reportingService) Summary(ctx context.Context, ownerID, displayCurrency string) (*dto.SummaryResponse, error) {
	displayCurrency = strings.ToUpper(displayCurrency)
	rates := s.rates.Rates()
	if _, ok := rates[displayCurrency]; !ok {
		return nil, fmt.Errorf("%w: unsupported display currency %q", apperrors.ErrValidation, displayCurrency)
	}

	assets, err := s.assetRepo.FindEntriesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assets for summary: %w", err)
	}
	debts, err := s.debtRepo.FindEntriesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load debts for summary: %w", err)
	}

	assetBreakdown, totalAssets, err := fx.TotalsByCategory(toValuations(assets), displayCurrency, rates)
	if err != nil {
		return nil, summaryConversionError(err)
	}
	debtBreakdown, totalDebts, err := fx.TotalsByCategory(toValuations(debts), displayCurrency, rates)
	if err != nil {
		return nil, summaryConversionError(err)
	}

	return &dto.SummaryResponse{
		DisplayCurrency: displayCurrency,
		TotalAssets:     totalAssets,
		TotalDebts:      totalDebts,
		// Exact subtraction of the two converted totals, no extra rounding.
		NetWorth:        totalAssets.Sub(totalDebts),
		AssetAllocation: toAllocation(assetBreakdown, totalAssets),
		DebtAllocation:  toAllocation(debtBreakdown, totalDebts),
	}, nil
}

// summaryConversionError maps an unknown stored currency to a validation
// error so it surfaces as a client problem, not a server fault.
func summaryConversionError(err error) error {
	if errors.Is(err, fx.ErrUnknownCurrency) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return fmt.Errorf("failed to aggregate entries: %w", err)
}
