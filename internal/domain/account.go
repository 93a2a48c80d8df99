package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is the stored identity for a registered user.
// Accounts are created once at signup and never mutated or deleted; there is
// no profile-edit or account-removal flow in this site.
type Account struct {
	AccountID    uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is the server-held proof of an authenticated request.
// It references its account by id only and caches the display fields so
// protected pages can render without a store round-trip.
type Session struct {
	AccountID uuid.UUID
	Email     string
	FullName  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// LoginAttempt records authentication outcomes for audit purposes.
type LoginAttempt struct {
	ID            int64
	AccountID     *uuid.UUID
	AttemptAt     time.Time
	IPAddress     string
	Status        string
	FailureReason string
	UserAgent     string
}
