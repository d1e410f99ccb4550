package usecase_test

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/config"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/database/sqlite"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/database/storage"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/usecase"
)

type registries struct {
	users  usecase.UserRegistry
	events usecase.EventRegistry
	ledger usecase.RegistrationLedger
}

// newRegistries builds the three usecases over a throwaway SQLite
// store, wired exactly as in the DI container.
func newRegistries(t *testing.T) registries {
	t.Helper()

	cfg := &config.Config{DatabasePath: filepath.Join(t.TempDir(), "test.db")}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := sqlite.NewClient(cfg, logger)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	userStore := storage.NewUserStore(client.Gorm, logger)
	eventStore := storage.NewEventStore(client.Gorm, logger)
	regStore := storage.NewRegistrationStore(client.Gorm, logger)

	return registries{
		users:  usecase.NewUserRegistry(userStore),
		events: usecase.NewEventRegistry(eventStore),
		ledger: usecase.NewRegistrationLedger(userStore, eventStore, regStore),
	}
}

func createUser(t *testing.T, r registries, username, email, name string) {
	t.Helper()
	err := r.users.CreateUser(t.Context(), domain.UserCreate{Username: username, Email: email, Name: name})
	if err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
}

func createEvent(t *testing.T, r registries, title string) int64 {
	t.Helper()
	event, err := r.events.CreateEvent(t.Context(), domain.EventCreate{Title: title, Description: "d", Location: "l"})
	if err != nil {
		t.Fatalf("failed to create event %s: %v", title, err)
	}
	return event.ID
}
