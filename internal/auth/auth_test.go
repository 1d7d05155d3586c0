package auth

import (
	"errors"
	"testing"
	"time"
)

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := VerifyPassword(hash, "correct horse"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := VerifyPassword(hash, "wrong"); !errors.Is(err, ErrBadCredential) {
		t.Fatalf("expected ErrBadCredential, got %v", err)
	}
	if err := VerifyPassword("", "anything"); !errors.Is(err, ErrBadCredential) {
		t.Fatalf("expected ErrBadCredential for missing hash, got %v", err)
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

func TestTokenTypeEnforced(t *testing.T) {
	m := &Manager{
		Secret:     []byte("test-secret"),
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
		Issuer:     "niiting-backend",
	}

	access, err := m.NewAccessToken()
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if _, err := m.Parse(access, TokenAccess); err != nil {
		t.Fatalf("access token rejected: %v", err)
	}
	if _, err := m.Parse(access, TokenRefresh); err == nil {
		t.Fatalf("access token accepted as refresh token")
	}

	refresh, err := m.NewRefreshToken()
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if _, err := m.Parse(refresh, TokenAccess); err == nil {
		t.Fatalf("refresh token accepted as access token")
	}
}

func TestParseRejectsForeignSignature(t *testing.T) {
	m := &Manager{Secret: []byte("secret-a"), AccessTTL: time.Minute, RefreshTTL: time.Hour, Issuer: "niiting-backend"}
	other := &Manager{Secret: []byte("secret-b"), AccessTTL: time.Minute, RefreshTTL: time.Hour, Issuer: "niiting-backend"}

	token, err := other.NewAccessToken()
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if _, err := m.Parse(token, TokenAccess); err == nil {
		t.Fatalf("expected signature mismatch to fail")
	}
}
