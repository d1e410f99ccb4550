package storage

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/config"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/database/sqlite"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway SQLite database through the same client
// as production, schema included.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{DatabasePath: filepath.Join(t.TempDir(), "test.db")}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := sqlite.NewClient(cfg, logger)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return client.Gorm
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustCreateUser(t *testing.T, s *UserStore, username, email, name string) {
	t.Helper()
	user := domain.User{Username: username, Email: email, Name: name}
	if err := s.CreateUser(t.Context(), &user); err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
}

func mustCreateEvent(t *testing.T, s *EventStore, title string) int64 {
	t.Helper()
	event := domain.Event{Title: title, Description: "d", Location: "l"}
	if err := s.CreateEvent(t.Context(), &event); err != nil {
		t.Fatalf("failed to create event %s: %v", title, err)
	}
	return event.ID
}

func mustRegister(t *testing.T, s *RegistrationStore, username string, eventID int64) {
	t.Helper()
	reg := domain.Registration{Username: username, EventID: eventID}
	if err := s.CreateRegistration(t.Context(), &reg); err != nil {
		t.Fatalf("failed to register %s to %d: %v", username, eventID, err)
	}
}

func registrationCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&domain.Registration{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count registrations: %v", err)
	}
	return count
}
