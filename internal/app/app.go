package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/config"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/database/sqlite"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/usecase"
)

// App bundles the configuration, the storage handle and the three
// resource registries behind one run/teardown lifecycle.
type App struct {
	Config *config.Config
	logger *slog.Logger
	db     *sqlite.Client

	users  usecase.UserRegistry
	events usecase.EventRegistry
	ledger usecase.RegistrationLedger
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	db *sqlite.Client,
	users usecase.UserRegistry,
	events usecase.EventRegistry,
	ledger usecase.RegistrationLedger,
) *App {
	return &App{
		Config: cfg,
		logger: logger,
		db:     db,
		users:  users,
		events: events,
		ledger: ledger,
	}
}

// LoggerIns returns the configured application logger.
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run serves HTTP until a termination signal arrives, then tears the
// application down.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := runServer(ctx, a.Config, a.logger, a.users, a.events, a.ledger)

	a.logger.Info("shutting down application")

	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("error during shutdown", "error", closeErr)
	}

	return err
}

// Shutdown closes the application resources. The database handle goes
// last since everything else writes through it.
func (a *App) Shutdown() error {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
	}
	return nil
}
