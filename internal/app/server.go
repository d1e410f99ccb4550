package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/config"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/handler"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/usecase"
)

// runServer starts the HTTP server and blocks until ctx is cancelled,
// then drains in-flight requests before returning.
func runServer(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	users usecase.UserRegistry,
	events usecase.EventRegistry,
	ledger usecase.RegistrationLedger,
) error {
	userHandler := handler.NewUserHandler(users, logger)
	eventHandler := handler.NewEventHandler(events, ledger, logger)
	registrationHandler := handler.NewRegistrationHandler(ledger, logger)

	router := handler.NewRouter(userHandler, eventHandler, registrationHandler, logger, cfg.RequestTimeout)

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("termination signal received, stopping server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped cleanly")
	return nil
}
