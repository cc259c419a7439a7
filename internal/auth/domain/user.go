package domain

import "time"

// User is the sole persisted entity. It is created at signup and read on
// every signin and authenticated request; nothing in this service updates or
// deletes it.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt encoded, never plaintext
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
