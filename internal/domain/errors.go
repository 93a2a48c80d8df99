package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidCredentials hides whether email or password failed.
	// The reason is to prevent account-enumeration side channels.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken signals a signup against an already registered email.
	// The unique index on accounts.email is the source of truth for this.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidInput covers bad form input: shape, length, or mismatch.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized is returned when a request carries no resolvable session.
	ErrUnauthorized   = errors.New("unauthorized")
	ErrSessionExpired = errors.New("session expired")
)
