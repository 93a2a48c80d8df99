package application

import (
	"time"

	"github.com/cognivus/cognivus/internal/ports"
)

// Service orchestrates the auth flow: validation, credential storage,
// hashing, and session issuance. All collaborators are injected so tests
// can run against in-memory fakes.
type Service struct {
	cfg           Config
	accounts      ports.AccountRepository
	loginAttempts ports.LoginAttemptRepository
	sessions      ports.SessionStore
	hasher        ports.PasswordHasher
	nowFn         func() time.Time
}

type Dependencies struct {
	Config        Config
	Accounts      ports.AccountRepository
	LoginAttempts ports.LoginAttemptRepository
	Sessions      ports.SessionStore
	Hasher        ports.PasswordHasher
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if cfg.MinPasswordLength <= 0 {
		cfg.MinPasswordLength = 6
	}
	return &Service{
		cfg:           cfg,
		accounts:      deps.Accounts,
		loginAttempts: deps.LoginAttempts,
		sessions:      deps.Sessions,
		hasher:        deps.Hasher,
		nowFn:         func() time.Time { return time.Now().UTC() },
	}
}
