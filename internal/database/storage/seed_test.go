package storage

import (
	"testing"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
)

func TestSeedDemoData(t *testing.T) {
	db := newTestDB(t)

	if err := SeedDemoData(t.Context(), db, testLogger()); err != nil {
		t.Fatalf("seeding failed: %v", err)
	}

	var users int64
	if err := db.Model(&domain.User{}).Count(&users).Error; err != nil {
		t.Fatalf("counting users: %v", err)
	}
	var events int64
	if err := db.Model(&domain.Event{}).Count(&events).Error; err != nil {
		t.Fatalf("counting events: %v", err)
	}
	if users != seedCount || events != seedCount {
		t.Fatalf("expected %d users and events, got %d and %d", seedCount, users, events)
	}
	if n := registrationCount(t, db); n != seedCount {
		t.Fatalf("expected %d registrations, got %d", seedCount, n)
	}

	// Every seeded registration must reference existing rows; the seed
	// may not produce dangling foreign references.
	var dangling int64
	err := db.Model(&domain.Registration{}).
		Joins("LEFT JOIN users ON users.username = registrations.username").
		Joins("LEFT JOIN events ON events.id = registrations.event_id").
		Where("users.username IS NULL OR events.id IS NULL").
		Count(&dangling).Error
	if err != nil {
		t.Fatalf("counting dangling registrations: %v", err)
	}
	if dangling != 0 {
		t.Fatalf("expected no dangling registrations, got %d", dangling)
	}
}
