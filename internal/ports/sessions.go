package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionData is the envelope stored against an opaque session token.
// Display fields are cached here so guarded pages render without hitting
// the account store.
type SessionData struct {
	AccountID uuid.UUID `json:"account_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStore persists sessions keyed by token for the configured TTL.
// Get returns (nil, nil) when the token is unknown or expired; session
// state lives only as long as the backing store does.
type SessionStore interface {
	Put(ctx context.Context, token string, data SessionData, ttl time.Duration) error
	Get(ctx context.Context, token string) (*SessionData, error)
	Delete(ctx context.Context, token string) error
}
