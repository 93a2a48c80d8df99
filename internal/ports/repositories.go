package ports

import (
	"context"
	"time"

	"github.com/cognivus/cognivus/internal/domain"
	"github.com/google/uuid"
)

// CreateAccountParams captures the inputs for account creation.
// Email is expected to be normalized (lowercased, trimmed) by the caller.
type CreateAccountParams struct {
	Email        string
	FullName     string
	PasswordHash string
	CreatedAtUTC time.Time
}

// AccountRepository defines persistence operations for accounts.
// Create must be atomic on the normalized email: a concurrent duplicate
// signup is rejected by the store itself, not by a prior lookup.
type AccountRepository interface {
	Create(ctx context.Context, params CreateAccountParams) (domain.Account, error)
	GetByEmail(ctx context.Context, email string) (domain.Account, error)
	GetByID(ctx context.Context, accountID uuid.UUID) (domain.Account, error)
}

// LoginAttemptRepository stores login outcomes for audit.
// Writes are best-effort; a failed insert never blocks the auth flow.
type LoginAttemptRepository interface {
	Insert(ctx context.Context, attempt domain.LoginAttempt) error
}
