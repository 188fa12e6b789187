package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wealthfolio/networth_backend/internal/core/domain"
	portsrepo "github.com/wealthfolio/networth_backend/internal/core/ports/repositories"
	"github.com/wealthfolio/networth_backend/internal/models"
)

type PgxNetWorthRepository struct {
	db *pgxpool.Pool
}

// NewNetWorthRepository creates a pgx-backed repository over net_worth_history.
func NewNetWorthRepository(db *pgxpool.Pool) portsrepo.NetWorthRepositoryFacade {
	return &PgxNetWorthRepository{db: db}
}

var _ portsrepo.NetWorthRepositoryFacade = (*PgxNetWorthRepository)(nil)

func toModelNetWorthRecord(d domain.NetWorthRecord) models.NetWorthRecord {
	return models.NetWorthRecord{
		RecordID:     d.RecordID,
		OwnerID:      d.OwnerID,
		Date:         d.Date,
		TotalAssets:  d.TotalAssets,
		TotalDebts:   d.TotalDebts,
		NetWorth:     d.NetWorth,
		BaseCurrency: d.BaseCurrency,
		CreatedAt:    d.CreatedAt,
	}
}

func toDomainNetWorthRecord(m models.NetWorthRecord) domain.NetWorthRecord {
	return domain.NetWorthRecord{
		RecordID:     m.RecordID,
		OwnerID:      m.OwnerID,
		Date:         m.Date,
		TotalAssets:  m.TotalAssets,
		TotalDebts:   m.TotalDebts,
		NetWorth:     m.NetWorth,
		BaseCurrency: m.BaseCurrency,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *PgxNetWorthRepository) AppendRecord(ctx context.Context, record domain.NetWorthRecord) error {
	m := toModelNetWorthRecord(record)
	query := `
        INSERT INTO net_worth_history (record_id, owner_id, date, total_assets, total_debts, net_worth, base_currency, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		m.RecordID,
		m.OwnerID,
		m.Date,
		m.TotalAssets,
		m.TotalDebts,
		m.NetWorth,
		m.BaseCurrency,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append net worth record: %w", err)
	}
	return nil
}

func (r *PgxNetWorthRepository) FindRecordsByOwner(ctx context.Context, ownerID string, since time.Time) ([]domain.NetWorthRecord, error) {
	query := `
        SELECT record_id, owner_id, date, total_assets, total_debts, net_worth, base_currency, created_at
        FROM net_worth_history
        WHERE owner_id = $1 AND ($2::timestamptz IS NULL OR date >= $2)
        ORDER BY date ASC, created_at ASC;
    `
	var sinceArg *time.Time
	if !since.IsZero() {
		sinceArg = &since
	}
	rows, err := r.db.Query(ctx, query, ownerID, sinceArg)
	if err != nil {
		return nil, fmt.Errorf("failed to query net worth history: %w", err)
	}
	defer rows.Close()

	records := []domain.NetWorthRecord{}
	for rows.Next() {
		var m models.NetWorthRecord
		err := rows.Scan(
			&m.RecordID,
			&m.OwnerID,
			&m.Date,
			&m.TotalAssets,
			&m.TotalDebts,
			&m.NetWorth,
			&m.BaseCurrency,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan net worth record row: %w", err)
		}
		records = append(records, toDomainNetWorthRecord(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating net worth record rows: %w", rows.Err())
	}
	return records, nil
}
