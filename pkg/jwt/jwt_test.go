package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:        uuid.New(),
		Username:  "bangkalan",
		Kabupaten: "bangkalan",
		Role:      "admin",
	}
}

func TestIssueAndValidateRoundTrip(t *testing.T) {
	svc, err := NewTokenService([]byte("unit-test-secret"), 8*time.Hour, "samikna-platform", "samikna-dashboard")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	user := testUser()
	issuedAt := time.Now().Truncate(time.Second)

	token, expiresAt, err := svc.IssueSessionToken(user, "192.0.2.1", issuedAt)
	if err != nil {
		t.Fatalf("IssueSessionToken: %v", err)
	}
	if got := expiresAt.Sub(issuedAt); got != 8*time.Hour {
		t.Errorf("expiry - issuedAt = %v, want 8h", got)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("user id = %v, want %v", claims.UserID, user.ID)
	}
	if claims.Username != "bangkalan" || claims.Kabupaten != "bangkalan" || claims.Role != "admin" {
		t.Errorf("identity claims altered: %s/%s/%s", claims.Username, claims.Kabupaten, claims.Role)
	}
	if claims.ClientIP != "192.0.2.1" {
		t.Errorf("client ip = %q, want 192.0.2.1", claims.ClientIP)
	}
	if claims.Subject != user.ID.String() {
		t.Errorf("subject = %q, want %q", claims.Subject, user.ID.String())
	}
}

func TestValidateRejectsWrongKey(t *testing.T) {
	issuer, _ := NewTokenService([]byte("key-one"), time.Hour, "samikna-platform", "samikna-dashboard")
	verifier, _ := NewTokenService([]byte("key-two"), time.Hour, "samikna-platform", "samikna-dashboard")

	token, _, err := issuer.IssueSessionToken(testUser(), "", time.Now())
	if err != nil {
		t.Fatalf("IssueSessionToken: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("expected signature verification to fail with a different key")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc, _ := NewTokenService([]byte("unit-test-secret"), time.Hour, "samikna-platform", "samikna-dashboard")

	token, _, err := svc.IssueSessionToken(testUser(), "", time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("IssueSessionToken: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestValidateRejectsWrongAudience(t *testing.T) {
	issuer, _ := NewTokenService([]byte("unit-test-secret"), time.Hour, "samikna-platform", "other-audience")
	verifier, _ := NewTokenService([]byte("unit-test-secret"), time.Hour, "samikna-platform", "samikna-dashboard")

	token, _, err := issuer.IssueSessionToken(testUser(), "", time.Now())
	if err != nil {
		t.Fatalf("IssueSessionToken: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("expected audience mismatch to be rejected")
	}
}

func TestNewTokenServiceRequiresKey(t *testing.T) {
	if _, err := NewTokenService(nil, time.Hour, "iss", "aud"); err == nil {
		t.Fatal("expected error for empty secret key")
	}
}
