package services

import (
	"log/slog"

	portsrepo "github.com/wealthfolio/networth_backend/internal/core/ports/repositories"
	portssvc "github.com/wealthfolio/networth_backend/internal/core/ports/services"
	"github.com/wealthfolio/networth_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	container.Rates = NewRatesService(cfg.RatesAPIURL, logger)

	container.Asset = NewAssetService(repos.AssetRepo)
	container.Debt = NewDebtService(repos.DebtRepo)

	// Reporting reads the entry tables directly; net worth snapshots are
	// derived through reporting so both always agree.
	container.Reporting = NewReportingService(repos.AssetRepo, repos.DebtRepo, container.Rates)
	container.NetWorth = NewNetWorthService(repos.NetWorthRepo, container.Reporting)

	return container
}
