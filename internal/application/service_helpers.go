package application

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/cognivus/cognivus/internal/domain"
	"github.com/google/uuid"
)

// recordFailure stores failed login context for audit. Losing an audit row
// must never fail the login itself, so errors are only logged.
func (s *Service) recordFailure(ctx context.Context, accountID *uuid.UUID, req LoginRequest, reason string) {
	if err := s.loginAttempts.Insert(ctx, domain.LoginAttempt{
		AccountID:     accountID,
		AttemptAt:     s.nowFn(),
		IPAddress:     req.IPAddress,
		Status:        "FAILED",
		FailureReason: reason,
		UserAgent:     req.UserAgent,
	}); err != nil {
		slog.Default().WarnContext(ctx, "failed to persist login attempt",
			"service", "cognivus-web",
			"module", "application",
			"layer", "application",
			"operation", "record_login_failure",
			"outcome", "failure",
			"reason", reason,
			"error", err,
		)
	}
}

// normalizeEmail canonicalizes and validates email format before
// persistence and comparison.
func normalizeEmail(email string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return "", fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
	}
	return trimmed, nil
}

// newSessionToken returns an opaque, unguessable session token.
func newSessionToken() string {
	raw := make([]byte, 32)
	_, _ = rand.Read(raw)
	return hex.EncodeToString(raw)
}
