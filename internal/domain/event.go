package domain

import "time"

// Event represents an event record,
// corresponds to the 'events' table in the database.
// The id is a surrogate key assigned by the storage engine on insert.
type Event struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Location    string    `json:"location" gorm:"not null"`
	Date        time.Time `json:"date" gorm:"not null"`
}

func (Event) TableName() string {
	return "events"
}

// EventPublic is the wire-outbound projection of an Event.
// Events have no internal-only fields, so it mirrors the record.
type EventPublic struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
}

// EventCreate is the wire-inbound shape for creating an event.
// The id is never accepted from the caller.
type EventCreate struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
}

// EventUpdate is the wire-inbound shape for a full replacement of the
// mutable event fields. The id stays immutable.
type EventUpdate struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
}

// Public maps the storage record to its API projection.
func (e Event) Public() EventPublic {
	return EventPublic{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		Date:        e.Date,
	}
}

// Record maps the inbound shape to a storage record with a zero id,
// leaving id assignment to the storage engine.
func (c EventCreate) Record() Event {
	return Event{
		Title:       c.Title,
		Description: c.Description,
		Location:    c.Location,
		Date:        c.Date,
	}
}

// Apply replaces the mutable fields of the record in place.
func (e *Event) Apply(u EventUpdate) {
	e.Title = u.Title
	e.Description = u.Description
	e.Location = u.Location
	e.Date = u.Date
}
