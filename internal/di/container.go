package di

import (
	"context"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/app"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/config"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/database/sqlite"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/database/storage"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/logger"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/usecase"
)

// BuildApp initializes all dependencies and returns a ready App.
func BuildApp(ctx context.Context) (*app.App, error) {
	// 1. Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. SQLite client (opens the handle, migrates the schema)
	dbClient, err := sqlite.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Storage layer
	userStore := storage.NewUserStore(dbClient.Gorm, slogger)
	eventStore := storage.NewEventStore(dbClient.Gorm, slogger)
	registrationStore := storage.NewRegistrationStore(dbClient.Gorm, slogger)

	// 4. Development seeding on a fresh store
	if cfg.SeedOnFirstRun && dbClient.FirstRun() {
		if err := storage.SeedDemoData(ctx, dbClient.Gorm, slogger); err != nil {
			return nil, err
		}
	}

	// 5. Business logic
	userRegistry := usecase.NewUserRegistry(userStore)
	eventRegistry := usecase.NewEventRegistry(eventStore)
	registrationLedger := usecase.NewRegistrationLedger(userStore, eventStore, registrationStore)

	// 6. Final assembly
	application := app.NewApp(
		cfg,
		slogger,
		dbClient,
		userRegistry,
		eventRegistry,
		registrationLedger,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
