package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	id, err := ParseToken(token, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != 42 {
		t.Errorf("user id = %d, want 42", id)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(42, "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken(token, "other"); err == nil {
		t.Error("token verified under the wrong secret")
	}
}

func TestTokenExpired(t *testing.T) {
	token, err := GenerateToken(42, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken(token, "secret"); err == nil {
		t.Error("expired token accepted")
	}
}

func TestTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not-a-token", "secret"); err == nil {
		t.Error("garbage accepted")
	}
}
