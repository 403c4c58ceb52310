package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
	"github.com/Ryzeria/samikna-website-sub001/internal/repository"
	"github.com/Ryzeria/samikna-website-sub001/pkg/hash"
	"github.com/Ryzeria/samikna-website-sub001/pkg/jwt"
)

// fakeUserRepo counts every access so tests can verify the short-circuit
// and side-effect contracts.
type fakeUserRepo struct {
	users      map[string]*domain.User
	findCalls  int
	lastLookup string
	touchCalls int
	failWith   error
}

func (f *fakeUserRepo) FindActiveByUsername(ctx context.Context, username string) (*domain.User, error) {
	f.findCalls++
	f.lastLookup = username
	if f.failWith != nil {
		return nil, f.failWith
	}
	user, ok := f.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	f.touchCalls++
	return nil
}

const correctPassword = "petani-hebat-2024"

func newTestService(t *testing.T, repo *fakeUserRepo) (*AuthService, *jwt.TokenService) {
	t.Helper()

	tokens, err := jwt.NewTokenService([]byte("test-secret-key"), 8*time.Hour, "samikna-platform", "samikna-dashboard")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	svc := NewAuthService(repo, tokens, JitterPolicy{})
	svc.sleep = func(ctx context.Context, d time.Duration) {}
	return svc, tokens
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, kabupaten string, active bool) *domain.User {
	t.Helper()

	passwordHash, err := hash.Password(correctPassword)
	if err != nil {
		t.Fatalf("hash.Password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@samikna.id",
		PasswordHash: passwordHash,
		FullName:     "Admin " + kabupaten,
		Kabupaten:    kabupaten,
		Role:         "admin",
		IsActive:     active,
	}
	repo.users[username] = user
	return user
}

func TestAuthenticateSuccess(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*domain.User{}}
	seedUser(t, repo, "bangkalan", "bangkalan", true)
	svc, tokens := newTestService(t, repo)

	result, err := svc.Authenticate(context.Background(), "bangkalan", correctPassword, ClientContext{IP: "10.0.0.7"})
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}

	if result.User.Kabupaten != "bangkalan" {
		t.Errorf("profile kabupaten = %q, want %q", result.User.Kabupaten, "bangkalan")
	}
	if got := result.ExpiresAt.Sub(result.IssuedAt); got != 8*time.Hour {
		t.Errorf("session lifetime = %v, want %v", got, 8*time.Hour)
	}
	if repo.touchCalls != 1 {
		t.Errorf("touchCalls = %d, want 1", repo.touchCalls)
	}

	// Round-trip: the token must recover the identity claims untouched.
	claims, err := tokens.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Username != "bangkalan" || claims.Kabupaten != "bangkalan" || claims.Role != "admin" {
		t.Errorf("claims = %s/%s/%s, want bangkalan/bangkalan/admin", claims.Username, claims.Kabupaten, claims.Role)
	}
	if claims.ClientIP != "10.0.0.7" {
		t.Errorf("claims client ip = %q, want 10.0.0.7", claims.ClientIP)
	}
	if exp := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time); exp != 28800*time.Second {
		t.Errorf("token expiry - issued at = %v, want 28800s", exp)
	}
}

func TestAuthenticateCaseInsensitiveIdentifier(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*domain.User{}}
	seedUser(t, repo, "bangkalan", "bangkalan", true)
	svc, _ := newTestService(t, repo)

	result, err := svc.Authenticate(context.Background(), "  BANGKALAN ", correctPassword, ClientContext{})
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if result.User.Username != "bangkalan" {
		t.Errorf("username = %q, want bangkalan", result.User.Username)
	}
	if repo.lastLookup != "bangkalan" {
		t.Errorf("store lookup used %q, want normalized %q", repo.lastLookup, "bangkalan")
	}
}

func TestAuthenticateUniformFailure(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*domain.User{}}
	seedUser(t, repo, "bangkalan", "bangkalan", true)
	seedUser(t, repo, "sampang", "sampang", false)
	svc, _ := newTestService(t, repo)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "bangkalan", "not-the-password"},
		{"unknown user", "unknownuser", "whatever"},
		{"inactive account", "sampang", correctPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Authenticate(context.Background(), tt.username, tt.password, ClientContext{})
			if result != nil {
				t.Fatal("expected nil result")
			}
			// Every cause collapses to the one sentinel: same value,
			// same message.
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("err = %v, want ErrInvalidCredentials", err)
			}
			if err.Error() != ErrInvalidCredentials.Error() {
				t.Errorf("message = %q, want %q", err.Error(), ErrInvalidCredentials.Error())
			}
		})
	}

	if repo.touchCalls != 0 {
		t.Errorf("touchCalls = %d, want 0 on failures", repo.touchCalls)
	}
}

func TestAuthenticateEmptyInputShortCircuits(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*domain.User{}}
	svc, _ := newTestService(t, repo)

	slept := false
	svc.sleep = func(ctx context.Context, d time.Duration) { slept = true }

	for _, pair := range [][2]string{{"", "secret"}, {"bangkalan", ""}, {"   ", "secret"}} {
		_, err := svc.Authenticate(context.Background(), pair[0], pair[1], ClientContext{})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Authenticate(%q, %q) err = %v, want ErrInvalidInput", pair[0], pair[1], err)
		}
	}

	if repo.findCalls != 0 {
		t.Errorf("findCalls = %d, want 0 for empty input", repo.findCalls)
	}
	if slept {
		t.Error("empty input must fail fast, without the jitter delay")
	}
}

func TestAuthenticateStoreFailureIsDistinct(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*domain.User{}, failWith: errors.New("connection refused")}
	svc, _ := newTestService(t, repo)

	_, err := svc.Authenticate(context.Background(), "bangkalan", "secret", ClientContext{})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("err = %v, want ErrStoreUnavailable", err)
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("store failure must not be conflated with bad credentials")
	}
}

func TestAuthenticateDelayWithinBand(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*domain.User{}}
	seedUser(t, repo, "bangkalan", "bangkalan", true)

	tokens, err := jwt.NewTokenService([]byte("test-secret-key"), 8*time.Hour, "samikna-platform", "samikna-dashboard")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	jitter := JitterPolicy{Min: 10 * time.Millisecond, Max: 20 * time.Millisecond}
	svc := NewAuthService(repo, tokens, jitter)

	var delays []time.Duration
	svc.sleep = func(ctx context.Context, d time.Duration) { delays = append(delays, d) }

	for i := 0; i < 50; i++ {
		if _, err := svc.Authenticate(context.Background(), "bangkalan", "wrong", ClientContext{}); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("err = %v, want ErrInvalidCredentials", err)
		}
		if _, err := svc.Authenticate(context.Background(), "ghost", "wrong", ClientContext{}); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("err = %v, want ErrInvalidCredentials", err)
		}
	}

	if len(delays) != 100 {
		t.Fatalf("sleep called %d times, want 100", len(delays))
	}
	for _, d := range delays {
		if d < jitter.Min || d >= jitter.Max {
			t.Fatalf("delay %v outside band [%v, %v)", d, jitter.Min, jitter.Max)
		}
	}
}

func TestJitterPolicyDegenerateBand(t *testing.T) {
	p := JitterPolicy{Min: 5 * time.Millisecond, Max: 5 * time.Millisecond}
	if got := p.duration(); got != 5*time.Millisecond {
		t.Errorf("duration = %v, want %v", got, 5*time.Millisecond)
	}

	var zero JitterPolicy
	if got := zero.duration(); got != 0 {
		t.Errorf("zero policy duration = %v, want 0", got)
	}
}

func TestSleepContextHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	sleepContext(ctx, time.Minute)
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("sleepContext ignored cancellation, slept %v", elapsed)
	}
}
