package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/wealthfolio/networth_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories over one pool.
func NewRepositoryProvider(db *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     NewUserRepository(db),
		AssetRepo:    NewAssetRepository(db),
		DebtRepo:     NewDebtRepository(db),
		NetWorthRepo: NewNetWorthRepository(db),
	}
}
