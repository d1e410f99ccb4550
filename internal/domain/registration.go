package domain

// Registration is the join record between a user and an event,
// corresponds to the 'registrations' table in the database.
// The pair (username, event_id) is the composite primary key; the
// storage-side uniqueness on it is the last line of defense against
// a duplicate slipping through the check-then-insert window.
type Registration struct {
	Username string `json:"username" gorm:"primaryKey"`
	EventID  int64  `json:"event_id" gorm:"primaryKey;column:event_id"`
}

func (Registration) TableName() string {
	return "registrations"
}

// RegistrationCreate is the identity payload submitted when registering
// a user to an event. Name and email must match the stored user record,
// so a caller cannot register on behalf of a user it does not match.
// The event id comes from the request path, not the body.
type RegistrationCreate struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}
