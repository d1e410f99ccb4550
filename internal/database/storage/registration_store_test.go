package storage

import (
	"testing"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
)

func TestListEventsForUser_Join(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db, testLogger())
	events := NewEventStore(db, testLogger())
	regs := NewRegistrationStore(db, testLogger())

	mustCreateUser(t, users, "alice", "alice@example.it", "Alice A")
	mustCreateUser(t, users, "bob", "bob@example.it", "Bob B")
	e1 := mustCreateEvent(t, events, "concert")
	e2 := mustCreateEvent(t, events, "conference")
	mustCreateEvent(t, events, "unrelated")

	mustRegister(t, regs, "alice", e1)
	mustRegister(t, regs, "alice", e2)
	mustRegister(t, regs, "bob", e1)

	got, err := regs.ListEventsForUser(t.Context(), "alice")
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events for alice, got %+v", got)
	}
	seen := map[int64]bool{}
	for _, e := range got {
		seen[e.ID] = true
	}
	if !seen[e1] || !seen[e2] {
		t.Fatalf("expected events %d and %d, got %+v", e1, e2, got)
	}
}

func TestListEventsForUser_UnknownUserIsEmpty(t *testing.T) {
	db := newTestDB(t)
	regs := NewRegistrationStore(db, testLogger())

	got, err := regs.ListEventsForUser(t.Context(), "ghost")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result for unknown user, got %+v", got)
	}
}

func TestGetRegistration_Absent(t *testing.T) {
	db := newTestDB(t)
	regs := NewRegistrationStore(db, testLogger())

	reg, err := regs.GetRegistration(t.Context(), "ghost", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg != nil {
		t.Fatalf("expected nil for absent registration, got %+v", reg)
	}
}

func TestCreateRegistration_DuplicatePairRejectedByStore(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db, testLogger())
	events := NewEventStore(db, testLogger())
	regs := NewRegistrationStore(db, testLogger())

	mustCreateUser(t, users, "alice", "alice@example.it", "Alice A")
	e1 := mustCreateEvent(t, events, "concert")
	mustRegister(t, regs, "alice", e1)

	// The composite primary key is the backstop against a duplicate
	// slipping through the check-then-insert window.
	dup := domain.Registration{Username: "alice", EventID: e1}
	if err := regs.CreateRegistration(t.Context(), &dup); err == nil {
		t.Fatal("expected composite key violation")
	}
}

func TestDeleteRegistration(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db, testLogger())
	events := NewEventStore(db, testLogger())
	regs := NewRegistrationStore(db, testLogger())

	mustCreateUser(t, users, "alice", "alice@example.it", "Alice A")
	e1 := mustCreateEvent(t, events, "concert")
	mustRegister(t, regs, "alice", e1)

	if err := regs.DeleteRegistration(t.Context(), "alice", e1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	reg, err := regs.GetRegistration(t.Context(), "alice", e1)
	if err != nil || reg != nil {
		t.Fatalf("expected registration gone, got %+v, %v", reg, err)
	}
}
