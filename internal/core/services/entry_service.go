package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealthfolio/networth_backend/internal/apperrors"
	"github.com/wealthfolio/networth_backend/internal/core/domain"
	portsrepo "github.com/wealthfolio/networth_backend/internal/core/ports/repositories"
	portssvc "github.com/wealthfolio/networth_backend/internal/core/ports/services"
	"github.com/wealthfolio/networth_backend/internal/dto"
)

// entryService implements EntrySvcFacade over one entry table. The assets
// service and the debts service are two instances of this type; only the
// kind (and with it the category set) and the backing repository differ.
type entryService struct {
	kind      domain.EntryKind
	entryRepo portsrepo.EntryRepositoryFacade
}

// NewAssetService creates the entry service over the assets table.
func NewAssetService(repo portsrepo.EntryRepositoryFacade) portssvc.EntrySvcFacade {
	return &entryService{kind: domain.KindAsset, entryRepo: repo}
}

// NewDebtService creates the entry service over the debts table.
func NewDebtService(repo portsrepo.EntryRepositoryFacade) portssvc.EntrySvcFacade {
	return &entryService{kind: domain.KindDebt, entryRepo: repo}
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

func (s *entryService) Kind() domain.EntryKind {
	return s.kind
}

func (s *entryService) validate(name, category, currency string, value decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if !domain.ValidCategory(s.kind, category) {
		return fmt.Errorf("%w: %q is not a valid %s category", apperrors.ErrValidation, category, s.kind)
	}
	if value.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: value must be positive", apperrors.ErrValidation)
	}
	if len(currency) != 3 {
		return fmt.Errorf("%w: currency must be a 3-letter code", apperrors.ErrValidation)
	}
	return nil
}

func (s *entryService) ListEntries(ctx context.Context, ownerID string) ([]domain.Entry, error) {
	entries, err := s.entryRepo.FindEntriesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s entries in service: %w", s.kind, err)
	}
	return entries, nil
}

func (s *entryService) CreateEntry(ctx context.Context, ownerID string, req dto.CreateEntryRequest) (*domain.Entry, error) {
	currency := strings.ToUpper(req.Currency)
	if err := s.validate(req.Name, req.Category, currency, req.Value); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.Entry{
		EntryID:     uuid.NewString(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(req.Name),
		Category:    req.Category,
		Value:       req.Value,
		Currency:    currency,
		Comments:    req.Comments,
		LastUpdated: now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create %s entry in service: %w", s.kind, err)
	}
	return &entry, nil
}

func (s *entryService) UpdateEntry(ctx context.Context, ownerID, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, ownerID, entryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		entry.Name = *req.Name
	}
	if req.Category != nil {
		entry.Category = *req.Category
	}
	if req.Value != nil {
		entry.Value = *req.Value
	}
	if req.Currency != nil {
		entry.Currency = strings.ToUpper(*req.Currency)
	}
	if req.Comments != nil {
		entry.Comments = *req.Comments
	}
	if err := s.validate(entry.Name, entry.Category, entry.Currency, entry.Value); err != nil {
		return nil, err
	}

	now := time.Now()
	entry.LastUpdated = now
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = ownerID

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to update %s entry in service: %w", s.kind, err)
	}
	return entry, nil
}

func (s *entryService) DeleteEntry(ctx context.Context, ownerID, entryID string) error {
	if err := s.entryRepo.DeleteEntry(ctx, ownerID, entryID); err != nil {
		return err
	}
	return nil
}
