package helpers

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, exp, err := m.GenerateAccessToken("user-123")
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}
	if until := time.Until(exp); until < 59*time.Minute || until > time.Hour {
		t.Errorf("unexpected expiry: %v from now", until)
	}

	claims, err := m.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("ParseAccessToken error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("expected uid user-123, got %q", claims.UserID)
	}
}

func TestGenerateAccessTokenMissingSecret(t *testing.T) {
	m := NewJWTManager("", time.Hour)
	if _, _, err := m.GenerateAccessToken("user-123"); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestParseAccessTokenExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)
	token, _, err := m.GenerateAccessToken("user-123")
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}
	if _, err := m.ParseAccessToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	m := NewJWTManager("secret-a", time.Hour)
	token, _, err := m.GenerateAccessToken("user-123")
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	other := NewJWTManager("secret-b", time.Hour)
	if _, err := other.ParseAccessToken(token); err == nil {
		t.Fatal("expected verification failure with a different secret")
	}
}

func TestParseAccessTokenMalformed(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	if _, err := m.ParseAccessToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
