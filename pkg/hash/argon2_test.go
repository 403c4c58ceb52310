package hash

import (
	"errors"
	"strings"
	"testing"
)

func TestPasswordVerifyRoundTrip(t *testing.T) {
	encoded, err := Password("rahasia-sekali")
	if err != nil {
		t.Fatalf("Password: %v", err)
	}

	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Errorf("encoded hash %q missing argon2id prefix", encoded)
	}

	ok, err := Verify("rahasia-sekali", encoded)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Error("correct password did not verify")
	}

	ok, err = Verify("bukan-rahasia", encoded)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Error("wrong password verified")
	}
}

func TestPasswordHashesAreSalted(t *testing.T) {
	first, err := Password("same-password")
	if err != nil {
		t.Fatalf("Password: %v", err)
	}
	second, err := Password("same-password")
	if err != nil {
		t.Fatalf("Password: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password are identical; salt missing")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"not a hash", "plaintext"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
		{"truncated", "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Verify("whatever", tt.encoded); !errors.Is(err, ErrMalformedHash) {
				t.Errorf("err = %v, want ErrMalformedHash", err)
			}
		})
	}
}

func TestVerifyUnsupportedVersion(t *testing.T) {
	encoded := "$argon2id$v=18$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g"
	if _, err := Verify("whatever", encoded); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("err = %v, want ErrUnsupportedVersion", err)
	}
}
