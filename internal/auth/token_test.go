package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", time.Hour)

	token, err := m.Issue("6507f1f77bcf86cd79943901", RoleRider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := m.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "6507f1f77bcf86cd79943901" {
		t.Errorf("wrong subject: %s", p.ID)
	}
	if p.Role != RoleRider {
		t.Errorf("wrong role: %s", p.Role)
	}
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewManager("secret-a", time.Hour).Issue("id", RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = NewManager("secret-b", time.Hour).Verify(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", -time.Minute)

	token, err := m.Issue("id", RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_RejectsGarbage(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", time.Hour)
	if _, err := m.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestPasswordHash_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "secret123") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "secret124") {
		t.Error("wrong password accepted")
	}
}
