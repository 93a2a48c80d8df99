package application

import (
	"time"

	"github.com/google/uuid"
)

type Config struct {
	SessionTTL        time.Duration
	MinPasswordLength int
}

type SignupRequest struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
}

type SignupResponse struct {
	AccountID uuid.UUID
}

type LoginRequest struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

// LoginResponse carries the opaque session token the HTTP adapter sets as a
// cookie, plus the session envelope for immediate rendering.
type LoginResponse struct {
	Token     string
	AccountID uuid.UUID
	FullName  string
	Email     string
	ExpiresAt time.Time
}
