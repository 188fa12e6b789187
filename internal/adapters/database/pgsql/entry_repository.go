package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wealthfolio/networth_backend/internal/apperrors"
	"github.com/wealthfolio/networth_backend/internal/core/domain"
	portsrepo "github.com/wealthfolio/networth_backend/internal/core/ports/repositories"
	"github.com/wealthfolio/networth_backend/internal/models"
)

// PgxEntryRepository serves one entry table. The assets and debts tables share
// a shape, so the same repository backs both, parameterized by table name.
// The table name comes from a package constant, never from input.
type PgxEntryRepository struct {
	db    *pgxpool.Pool
	table string
}

// NewAssetRepository creates a pgx-backed repository over the assets table.
func NewAssetRepository(db *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{db: db, table: "assets"}
}

// NewDebtRepository creates a pgx-backed repository over the debts table.
func NewDebtRepository(db *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{db: db, table: "debts"}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

// Helper to convert domain.Entry to models.Entry
func toModelEntry(d domain.Entry) models.Entry {
	m := models.Entry{
		EntryID:     d.EntryID,
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Category:    d.Category,
		Value:       d.Value,
		Currency:    d.Currency,
		LastUpdated: d.LastUpdated,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.Comments != "" {
		m.Comments = sql.NullString{String: d.Comments, Valid: true}
	}
	return m
}

// Helper to convert models.Entry to domain.Entry
func toDomainEntry(m models.Entry) domain.Entry {
	return domain.Entry{
		EntryID:     m.EntryID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Category:    m.Category,
		Value:       m.Value,
		Currency:    m.Currency,
		Comments:    m.Comments.String,
		LastUpdated: m.LastUpdated,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const entryColumns = `entry_id, owner_id, name, category, value, currency, comments, last_updated, created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (models.Entry, error) {
	var m models.Entry
	err := row.Scan(
		&m.EntryID,
		&m.OwnerID,
		&m.Name,
		&m.Category,
		&m.Value,
		&m.Currency,
		&m.Comments,
		&m.LastUpdated,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	m := toModelEntry(entry)
	query := fmt.Sprintf(`
        INSERT INTO %s (entry_id, owner_id, name, category, value, currency, comments, last_updated, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `, r.table)
	_, err := r.db.Exec(ctx, query,
		m.EntryID,
		m.OwnerID,
		m.Name,
		m.Category,
		m.Value,
		m.Currency,
		m.Comments,
		m.LastUpdated,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s entry: %w", r.table, err)
	}
	return nil
}

func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, ownerID, entryID string) (*domain.Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE entry_id = $1 AND owner_id = $2;`, entryColumns, r.table)
	m, err := scanEntry(r.db.QueryRow(ctx, query, entryID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Rows outside the owner's scope look identical to missing rows.
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s entry %s: %w", r.table, entryID, err)
	}
	entry := toDomainEntry(m)
	return &entry, nil
}

func (r *PgxEntryRepository) FindEntriesByOwner(ctx context.Context, ownerID string) ([]domain.Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE owner_id = $1 ORDER BY last_updated DESC, entry_id;`, entryColumns, r.table)
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s entries: %w", r.table, err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s entry row: %w", r.table, err)
		}
		entries = append(entries, toDomainEntry(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating %s entry rows: %w", r.table, rows.Err())
	}
	return entries, nil
}

func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	m := toModelEntry(entry)
	query := fmt.Sprintf(`
        UPDATE %s
        SET name = $1, category = $2, value = $3, currency = $4, comments = $5,
            last_updated = $6, last_updated_at = $7, last_updated_by = $8
        WHERE entry_id = $9 AND owner_id = $10;
    `, r.table)
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.Category,
		m.Value,
		m.Currency,
		m.Comments,
		m.LastUpdated,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.EntryID,
		m.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update %s entry: %w", r.table, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s entry not found: %w", r.table, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, ownerID, entryID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE entry_id = $1 AND owner_id = $2;`, r.table)
	cmdTag, err := r.db.Exec(ctx, query, entryID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete %s entry: %w", r.table, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s entry not found: %w", r.table, apperrors.ErrNotFound)
	}
	return nil
}
