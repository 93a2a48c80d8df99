package postgres

import (
	"github.com/cognivus/cognivus/internal/ports"
	"gorm.io/gorm"
)

// Repositories bundles the Postgres-backed repository implementations.
type Repositories struct {
	Accounts      ports.AccountRepository
	LoginAttempts ports.LoginAttemptRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Accounts:      &accountRepository{db: db},
		LoginAttempts: &loginAttemptRepository{db: db},
	}
}
