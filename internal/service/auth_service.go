package service

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
	"github.com/Ryzeria/samikna-website-sub001/internal/repository"
	"github.com/Ryzeria/samikna-website-sub001/pkg/hash"
	"github.com/Ryzeria/samikna-website-sub001/pkg/jwt"
)

var (
	ErrInvalidInput       = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStoreUnavailable   = errors.New("credential store unavailable")
)

// PasswordVerifier checks a plaintext secret against a stored hash.
// Comparison is delegated to the hashing primitive, never done here.
type PasswordVerifier func(secret, encodedHash string) (bool, error)

// JitterPolicy bounds the randomized delay applied before every
// credential rejection. Unknown user, inactive account and wrong
// password all pay the same randomized cost, so the cause cannot be
// told apart by timing. A zero policy disables the delay (tests).
type JitterPolicy struct {
	Min time.Duration
	Max time.Duration
}

func (p JitterPolicy) duration() time.Duration {
	if p.Max <= p.Min {
		return p.Min
	}
	return p.Min + time.Duration(rand.Int63n(int64(p.Max-p.Min)))
}

// ClientContext carries request metadata used for claims and audit
// logging only. It never participates in the authorization decision.
type ClientContext struct {
	IP        string
	UserAgent string
}

type LoginResult struct {
	Token     string          `json:"token"`
	User      *domain.Profile `json:"user"`
	IssuedAt  time.Time       `json:"loginTime"`
	ExpiresAt time.Time       `json:"sessionExpiry"`
}

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *jwt.TokenService
	verify   PasswordVerifier
	jitter   JitterPolicy

	// overridable in tests
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration)
}

func NewAuthService(userRepo repository.UserRepository, tokens *jwt.TokenService, jitter JitterPolicy) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		verify:   hash.Verify,
		jitter:   jitter,
		now:      time.Now,
		sleep:    sleepContext,
	}
}

// Authenticate turns a (username, password) pair into a signed session
// token and public profile, or a uniform failure. Every rejection for a
// non-empty pair looks identical to the caller: same error, same shape,
// and a randomized delay inside the configured band.
func (s *AuthService) Authenticate(ctx context.Context, username, password string, client ClientContext) (*LoginResult, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		// Caller error: fail fast, no store access, no delay.
		return nil, ErrInvalidInput
	}

	user, err := s.userRepo.FindActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, s.reject(ctx, username, client, "unknown_user")
		}
		log.Printf("[AUTH] store error during login user=%s: %v", username, err)
		s.audit(username, client, "store_error")
		return nil, ErrStoreUnavailable
	}

	// The query already filters on is_active; keep the invariant local
	// so a future repository change cannot silently widen it.
	if !user.IsActive {
		return nil, s.reject(ctx, username, client, "inactive_account")
	}

	ok, err := s.verify(password, user.PasswordHash)
	if err != nil {
		// A corrupt stored hash must not be distinguishable from a
		// wrong password.
		log.Printf("[AUTH] hash verification error user=%s: %v", username, err)
		return nil, s.reject(ctx, username, client, "verify_error")
	}
	if !ok {
		return nil, s.reject(ctx, username, client, "wrong_password")
	}

	issuedAt := s.now()
	token, expiresAt, err := s.tokens.IssueSessionToken(user, client.IP, issuedAt)
	if err != nil {
		log.Printf("[AUTH] token signing failed user=%s: %v", username, err)
		s.audit(username, client, "signing_error")
		return nil, ErrStoreUnavailable
	}

	// The only persisted state transition: one atomic last_login touch.
	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		log.Printf("[AUTH] failed to record last login user=%s: %v", username, err)
	}

	s.audit(username, client, "success")

	return &LoginResult{
		Token:     token,
		User:      user.Profile(),
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// reject applies the uniform-failure contract: audit the attempt, pay
// the randomized delay, and return the one opaque credential error.
func (s *AuthService) reject(ctx context.Context, username string, client ClientContext, outcome string) error {
	s.audit(username, client, outcome)

	if d := s.jitter.duration(); d > 0 {
		s.sleep(ctx, d)
	}

	return ErrInvalidCredentials
}

// audit writes one log line per attempt. The plaintext secret is never
// part of it.
func (s *AuthService) audit(username string, client ClientContext, outcome string) {
	log.Printf("[AUTH] login attempt user=%s ip=%s agent=%q outcome=%s",
		username, client.IP, client.UserAgent, outcome)
}

// sleepContext suspends only the calling goroutine and returns early if
// the request is cancelled.
func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
