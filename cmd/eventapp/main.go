package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/di"
)

func main() {
	// Bootstrap logger, used only during initialization before the
	// configured logger exists.
	bootstrapLogger := slog.New(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)
	bootstrapLogger.Info("starting application")

	ctx := context.Background()

	application, err := di.BuildApp(ctx)
	if err != nil {
		bootstrapLogger.Error("failed to build app", "error", err)
		os.Exit(1)
	}

	logger := application.LoggerIns()
	logger.Info("application initialized successfully")

	if err := application.Run(ctx); err != nil {
		logger.Error("application run failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}
