package domain

import "errors"

// Sentinel errors for the two failure categories the API distinguishes:
// a referenced entity is absent, or a uniqueness/identity rule is violated.
// The error text doubles as the detail string returned to API callers.
var (
	ErrUserNotFound         = errors.New("User not found")
	ErrEventNotFound        = errors.New("Event not found")
	ErrRegistrationNotFound = errors.New("Registration not found")

	ErrEmailTaken        = errors.New("Email already registered")
	ErrUsernameTaken     = errors.New("Username is already taken")
	ErrIdentityMismatch  = errors.New("Submitted user data does not match the registered user")
	ErrAlreadyRegistered = errors.New("User is already registered for this event")
)
