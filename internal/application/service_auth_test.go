package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cognivus/cognivus/internal/adapters/cache"
	"github.com/cognivus/cognivus/internal/domain"
	"github.com/cognivus/cognivus/internal/ports"
)

func TestSignupLoginLogoutFlow(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	signupRes, err := f.service.Signup(ctx, SignupRequest{
		FullName:        "Ada Lovelace",
		Email:           "ada@example.com",
		Password:        "secret12",
		ConfirmPassword: "secret12",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if signupRes.AccountID == uuid.Nil {
		t.Fatalf("signup returned empty account id")
	}

	loginRes, err := f.service.Login(ctx, LoginRequest{
		Email:     "ada@example.com",
		Password:  "secret12",
		IPAddress: "127.0.0.1",
		UserAgent: "unit-test",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loginRes.Token == "" {
		t.Fatalf("login token should not be empty")
	}
	if loginRes.FullName != "Ada Lovelace" {
		t.Fatalf("unexpected full name: %s", loginRes.FullName)
	}

	data, err := f.service.Resolve(ctx, loginRes.Token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if data.AccountID != signupRes.AccountID {
		t.Fatalf("session bound to wrong account")
	}

	if err := f.service.Logout(ctx, loginRes.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := f.service.Resolve(ctx, loginRes.Token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized after logout, got %v", err)
	}
	// Repeated logout with the same token stays a no-op.
	if err := f.service.Logout(ctx, loginRes.Token); err != nil {
		t.Fatalf("second logout failed: %v", err)
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	if _, err := f.service.Signup(ctx, SignupRequest{
		FullName:        "First",
		Email:           "dup@example.com",
		Password:        "secret12",
		ConfirmPassword: "secret12",
	}); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	// The same address with different casing resolves to the same account.
	_, err := f.service.Signup(ctx, SignupRequest{
		FullName:        "Second",
		Email:           "DUP@Example.COM",
		Password:        "secret12",
		ConfirmPassword: "secret12",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if got := f.accounts.count(); got != 1 {
		t.Fatalf("expected 1 account, got %d", got)
	}
}

func TestSignupValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		req  SignupRequest
	}{
		{name: "empty full name", req: SignupRequest{FullName: "  ", Email: "a@b.com", Password: "secret12", ConfirmPassword: "secret12"}},
		{name: "malformed email", req: SignupRequest{FullName: "A", Email: "not-an-email", Password: "secret12", ConfirmPassword: "secret12"}},
		{name: "short password", req: SignupRequest{FullName: "A", Email: "a@b.com", Password: "abc", ConfirmPassword: "abc"}},
		{name: "password mismatch", req: SignupRequest{FullName: "A", Email: "a@b.com", Password: "secret12", ConfirmPassword: "secret13"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture()
			_, err := f.service.Signup(context.Background(), tc.req)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if got := f.accounts.count(); got != 0 {
				t.Fatalf("expected no accounts after rejected signup, got %d", got)
			}
		})
	}
}

func TestSignupDoesNotIssueSession(t *testing.T) {
	t.Parallel()

	f := newFixture()
	if _, err := f.service.Signup(context.Background(), SignupRequest{
		FullName:        "Ada",
		Email:           "ada@example.com",
		Password:        "secret12",
		ConfirmPassword: "secret12",
	}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if got := len(f.attempts.rows); got != 0 {
		t.Fatalf("signup should not record login attempts, got %d", got)
	}
}

func TestLoginConflatesUnknownEmailAndWrongPassword(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	if _, err := f.service.Signup(ctx, SignupRequest{
		FullName:        "Ada",
		Email:           "ada@example.com",
		Password:        "secret12",
		ConfirmPassword: "secret12",
	}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, errUnknown := f.service.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "secret12"})
	_, errWrongPw := f.service.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "wrong-pass"})

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPw)
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("error messages must not distinguish the two cases: %q vs %q", errUnknown, errWrongPw)
	}
	if got := len(f.attempts.rows); got != 2 {
		t.Fatalf("expected 2 audited failures, got %d", got)
	}
}

func TestLoginNormalizesEmailCase(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	if _, err := f.service.Signup(ctx, SignupRequest{
		FullName:        "Ada",
		Email:           "Ada@Example.com",
		Password:        "secret12",
		ConfirmPassword: "secret12",
	}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	res, err := f.service.Login(ctx, LoginRequest{Email: "ADA@EXAMPLE.COM", Password: "secret12"})
	if err != nil {
		t.Fatalf("login with different casing failed: %v", err)
	}
	if res.Email != "ada@example.com" {
		t.Fatalf("expected normalized email, got %s", res.Email)
	}
}

func TestResolveExpiredSession(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	if _, err := f.service.Signup(ctx, SignupRequest{
		FullName:        "Ada",
		Email:           "ada@example.com",
		Password:        "secret12",
		ConfirmPassword: "secret12",
	}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	loginRes, err := f.service.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "secret12"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// Advance the service clock past the session TTL. The TTL is fixed at
	// login time, so activity in between does not extend it.
	f.service.nowFn = func() time.Time { return time.Now().UTC().Add(25 * time.Hour) }

	if _, err := f.service.Resolve(ctx, loginRes.Token); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}

	// The expired entry was evicted; a second resolve no longer finds it.
	f.service.nowFn = func() time.Time { return time.Now().UTC() }
	if _, err := f.service.Resolve(ctx, loginRes.Token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized after eviction, got %v", err)
	}
}

func TestResolveEmptyToken(t *testing.T) {
	t.Parallel()

	f := newFixture()
	if _, err := f.service.Resolve(context.Background(), ""); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for empty token, got %v", err)
	}
}

type fixture struct {
	service  *Service
	accounts *fakeAccounts
	attempts *fakeAttempts
}

func newFixture() *fixture {
	accounts := &fakeAccounts{byEmail: make(map[string]domain.Account)}
	attempts := &fakeAttempts{}

	svc := NewService(Dependencies{
		Config: Config{
			SessionTTL:        24 * time.Hour,
			MinPasswordLength: 6,
		},
		Accounts:      accounts,
		LoginAttempts: attempts,
		Sessions:      cache.NewMemorySessionStore(),
		Hasher:        &fakeHasher{},
	})

	return &fixture{service: svc, accounts: accounts, attempts: attempts}
}

type fakeAccounts struct {
	mu      sync.Mutex
	byEmail map[string]domain.Account
}

func (f *fakeAccounts) Create(_ context.Context, params ports.CreateAccountParams) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.byEmail[params.Email]; exists {
		return domain.Account{}, domain.ErrEmailTaken
	}
	account := domain.Account{
		AccountID:    uuid.New(),
		Email:        params.Email,
		FullName:     params.FullName,
		PasswordHash: params.PasswordHash,
		CreatedAt:    params.CreatedAtUTC,
	}
	f.byEmail[params.Email] = account
	return account, nil
}

func (f *fakeAccounts) GetByEmail(_ context.Context, email string) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.byEmail[email]
	if !ok {
		return domain.Account{}, domain.ErrNotFound
	}
	return account, nil
}

func (f *fakeAccounts) GetByID(_ context.Context, accountID uuid.UUID) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, account := range f.byEmail {
		if account.AccountID == accountID {
			return account, nil
		}
	}
	return domain.Account{}, domain.ErrNotFound
}

func (f *fakeAccounts) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byEmail)
}

type fakeAttempts struct {
	mu   sync.Mutex
	rows []domain.LoginAttempt
}

func (f *fakeAttempts) Insert(_ context.Context, attempt domain.LoginAttempt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, attempt)
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash, password string) error {
	if !strings.HasPrefix(hash, "hashed:") || hash[len("hashed:"):] != password {
		return fmt.Errorf("hash mismatch")
	}
	return nil
}
