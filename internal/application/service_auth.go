package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/cognivus/cognivus/internal/domain"
	"github.com/cognivus/cognivus/internal/ports"
)

// Signup validates the form, normalizes the email, and creates the account.
// The duplicate check is delegated to the repository's atomic create so two
// concurrent signups with the same email cannot both succeed. No session is
// established here; the caller redirects to the login page.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (SignupResponse, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return SignupResponse{}, fmt.Errorf("%w: full name is required", domain.ErrInvalidInput)
	}

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return SignupResponse{}, err
	}

	if err := domain.ValidatePassword(req.Password, s.cfg.MinPasswordLength); err != nil {
		return SignupResponse{}, err
	}
	if req.Password != req.ConfirmPassword {
		return SignupResponse{}, fmt.Errorf("%w: passwords do not match", domain.ErrInvalidInput)
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return SignupResponse{}, fmt.Errorf("hash password: %w", err)
	}

	account, err := s.accounts.Create(ctx, ports.CreateAccountParams{
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		CreatedAtUTC: s.nowFn(),
	})
	if err != nil {
		return SignupResponse{}, err
	}

	return SignupResponse{AccountID: account.AccountID}, nil
}

// Login verifies credentials and issues a session. A missing account and a
// wrong password both surface as ErrInvalidCredentials so callers cannot
// enumerate registered emails.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	if strings.TrimSpace(req.Password) == "" {
		return LoginResponse{}, fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return LoginResponse{}, err
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		s.recordFailure(ctx, nil, req, "ACCOUNT_NOT_FOUND")
		return LoginResponse{}, domain.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(account.PasswordHash, req.Password); err != nil {
		s.recordFailure(ctx, &account.AccountID, req, "INVALID_PASSWORD")
		return LoginResponse{}, domain.ErrInvalidCredentials
	}

	now := s.nowFn()
	token := newSessionToken()
	data := ports.SessionData{
		AccountID: account.AccountID,
		Email:     account.Email,
		FullName:  account.FullName,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
	}
	if err := s.sessions.Put(ctx, token, data, s.cfg.SessionTTL); err != nil {
		return LoginResponse{}, fmt.Errorf("create session: %w", err)
	}

	_ = s.loginAttempts.Insert(ctx, domain.LoginAttempt{
		AccountID: &account.AccountID,
		AttemptAt: now,
		IPAddress: req.IPAddress,
		Status:    "SUCCESS",
		UserAgent: req.UserAgent,
	})

	return LoginResponse{
		Token:     token,
		AccountID: account.AccountID,
		FullName:  account.FullName,
		Email:     account.Email,
		ExpiresAt: data.ExpiresAt,
	}, nil
}

// Resolve looks up the session for an opaque token. Expired entries are
// evicted lazily here; the TTL is fixed at login and not refreshed.
func (s *Service) Resolve(ctx context.Context, token string) (ports.SessionData, error) {
	if strings.TrimSpace(token) == "" {
		return ports.SessionData{}, domain.ErrUnauthorized
	}
	data, err := s.sessions.Get(ctx, token)
	if err != nil {
		return ports.SessionData{}, fmt.Errorf("resolve session: %w", err)
	}
	if data == nil {
		return ports.SessionData{}, domain.ErrUnauthorized
	}
	if data.ExpiresAt.Before(s.nowFn()) {
		_ = s.sessions.Delete(ctx, token)
		return ports.SessionData{}, domain.ErrSessionExpired
	}
	return *data, nil
}

// Logout destroys the session for the given token. Unknown tokens are a
// no-op so repeated logouts stay idempotent.
func (s *Service) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}
