package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
)

var (
	ErrInvalidSigningMethod = errors.New("unexpected signing method")
	ErrInvalidToken         = errors.New("invalid token")
)

// TokenService issues and verifies HS256 session tokens. Issuance is
// pure once the claims are assembled; no I/O is involved.
type TokenService struct {
	secretKey     []byte
	sessionExpiry time.Duration
	issuer        string
	audience      string
}

func NewTokenService(secretKey []byte, sessionExpiry time.Duration, issuer, audience string) (*TokenService, error) {
	if len(secretKey) == 0 {
		return nil, errors.New("secret key must not be empty")
	}

	return &TokenService{
		secretKey:     secretKey,
		sessionExpiry: sessionExpiry,
		issuer:        issuer,
		audience:      audience,
	}, nil
}

// SessionExpiry returns the configured token lifetime.
func (s *TokenService) SessionExpiry() time.Duration {
	return s.sessionExpiry
}

// IssueSessionToken signs a session token for the user. The expiry is
// exactly issuedAt + the configured session lifetime.
func (s *TokenService) IssueSessionToken(user *domain.User, clientIP string, issuedAt time.Time) (string, time.Time, error) {
	expiresAt := issuedAt.Add(s.sessionExpiry)

	claims := domain.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ID:        uuid.New().String(),
		},
		UserID:    user.ID,
		Username:  user.Username,
		Kabupaten: user.Kabupaten,
		Role:      user.Role,
		ClientIP:  clientIP,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// ValidateToken verifies the signature and standard claims (expiry,
// issuer, audience) and returns the decoded claims.
func (s *TokenService) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSigningMethod
		}
		return s.secretKey, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
