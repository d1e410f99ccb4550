package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"
)

const seedCount = 10

// SeedDemoData populates an empty store with synthetic users, events
// and registrations. Meant for development only, on the first run when
// the database file did not exist yet.
func SeedDemoData(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	start := time.Now()

	// Usernames and emails must be unique, so we track the generated
	// values and retry on a duplicate.
	usernames := make([]string, 0, seedCount)
	seenUsernames := map[string]bool{}
	seenEmails := map[string]bool{}

	for i := 0; i < seedCount; i++ {
		username := gofakeit.Username()
		for seenUsernames[username] {
			username = gofakeit.Username()
		}
		seenUsernames[username] = true

		email := gofakeit.Email()
		for seenEmails[email] {
			email = gofakeit.Email()
		}
		seenEmails[email] = true

		user := domain.User{
			Username: username,
			Email:    email,
			Name:     gofakeit.Name(),
		}
		if err := db.WithContext(ctx).Create(&user).Error; err != nil {
			return fmt.Errorf("seeding user: %w", err)
		}
		usernames = append(usernames, username)
	}

	eventIDs := make([]int64, 0, seedCount)
	for i := 0; i < seedCount; i++ {
		event := domain.Event{
			Title:       gofakeit.Sentence(5),
			Description: gofakeit.Sentence(20),
			Location:    gofakeit.Address().Address,
			Date:        gofakeit.FutureDate(),
		}
		if err := db.WithContext(ctx).Create(&event).Error; err != nil {
			return fmt.Errorf("seeding event: %w", err)
		}
		eventIDs = append(eventIDs, event.ID)
	}

	// (username, event_id) is the primary key of the registrations
	// table, so we reroll any pair that already came out.
	seenPairs := map[[2]int]bool{}
	for i := 0; i < seedCount; i++ {
		pair := [2]int{gofakeit.Number(0, seedCount-1), gofakeit.Number(0, seedCount-1)}
		for seenPairs[pair] {
			pair = [2]int{gofakeit.Number(0, seedCount-1), gofakeit.Number(0, seedCount-1)}
		}
		seenPairs[pair] = true

		reg := domain.Registration{
			Username: usernames[pair[0]],
			EventID:  eventIDs[pair[1]],
		}
		if err := db.WithContext(ctx).Create(&reg).Error; err != nil {
			return fmt.Errorf("seeding registration: %w", err)
		}
	}

	logger.Info("demo data seeded",
		"users", seedCount,
		"events", seedCount,
		"registrations", seedCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
