package storage

import (
	"testing"
	"time"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
)

func TestCreateEvent_AssignsID(t *testing.T) {
	db := newTestDB(t)
	events := NewEventStore(db, testLogger())

	first := mustCreateEvent(t, events, "first")
	second := mustCreateEvent(t, events, "second")

	if first == 0 || second == 0 {
		t.Fatalf("expected storage-assigned ids, got %d and %d", first, second)
	}
	if second <= first {
		t.Fatalf("expected increasing ids, got %d then %d", first, second)
	}
}

func TestGetEventByID_Absent(t *testing.T) {
	db := newTestDB(t)
	events := NewEventStore(db, testLogger())

	event, err := events.GetEventByID(t.Context(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event != nil {
		t.Fatalf("expected nil for absent event, got %+v", event)
	}
}

func TestUpdateEvent_ReplacesFieldsAndKeepsRegistrations(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db, testLogger())
	events := NewEventStore(db, testLogger())
	regs := NewRegistrationStore(db, testLogger())

	mustCreateUser(t, users, "alice", "alice@example.it", "Alice A")
	id := mustCreateEvent(t, events, "old title")
	mustRegister(t, regs, "alice", id)

	date := time.Date(2026, 9, 12, 18, 30, 0, 0, time.UTC)
	updated := domain.Event{ID: id, Title: "new title", Description: "new desc", Location: "Milano", Date: date}
	if err := events.UpdateEvent(t.Context(), &updated); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := events.GetEventByID(t.Context(), id)
	if err != nil || got == nil {
		t.Fatalf("fetch after update failed: %+v, %v", got, err)
	}
	if got.ID != id {
		t.Fatalf("id must be immutable, got %d", got.ID)
	}
	if got.Title != "new title" || got.Description != "new desc" || got.Location != "Milano" {
		t.Fatalf("fields not replaced: %+v", got)
	}
	if !got.Date.Equal(date) {
		t.Fatalf("date not replaced: got %v", got.Date)
	}

	// Update must never cascade into the join table.
	reg, err := regs.GetRegistration(t.Context(), "alice", id)
	if err != nil || reg == nil {
		t.Fatalf("registration did not survive the update: %+v, %v", reg, err)
	}
}

func TestDeleteEvent_CascadesOnlyOwnRegistrations(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db, testLogger())
	events := NewEventStore(db, testLogger())
	regs := NewRegistrationStore(db, testLogger())

	mustCreateUser(t, users, "alice", "alice@example.it", "Alice A")
	e1 := mustCreateEvent(t, events, "doomed")
	e2 := mustCreateEvent(t, events, "survivor")
	mustRegister(t, regs, "alice", e1)
	mustRegister(t, regs, "alice", e2)

	if err := events.DeleteEvent(t.Context(), e1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	event, err := events.GetEventByID(t.Context(), e1)
	if err != nil || event != nil {
		t.Fatalf("expected event gone, got %+v, %v", event, err)
	}

	remaining, err := regs.ListRegistrations(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].EventID != e2 {
		t.Fatalf("expected only the survivor registration, got %+v", remaining)
	}
}

func TestDeleteAllEvents_IdempotentWipe(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db, testLogger())
	events := NewEventStore(db, testLogger())
	regs := NewRegistrationStore(db, testLogger())

	mustCreateUser(t, users, "alice", "alice@example.it", "Alice A")
	e1 := mustCreateEvent(t, events, "concert")
	mustRegister(t, regs, "alice", e1)

	if err := events.DeleteAllEvents(t.Context()); err != nil {
		t.Fatalf("first wipe failed: %v", err)
	}
	if err := events.DeleteAllEvents(t.Context()); err != nil {
		t.Fatalf("second wipe failed: %v", err)
	}

	all, err := events.ListEvents(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no events, got %+v", all)
	}
	if n := registrationCount(t, db); n != 0 {
		t.Fatalf("expected no registrations, got %d", n)
	}
}
