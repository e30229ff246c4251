package app

import (
	"testing"
	"time"
)

func TestTokenGenerateAndParse(t *testing.T) {
	tm := NewTokenManager(TokenConfig{
		SecretKey: "test-secret-key",
		Expiry:    time.Hour,
	})

	token, err := tm.Generate(42, "tester", "127.0.0.1")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if token == "" {
		t.Fatal("Generate returned empty token")
	}

	user, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if user.UID != 42 {
		t.Errorf("UID = %d, want 42", user.UID)
	}
	if user.Nickname != "tester" {
		t.Errorf("Nickname = %s, want tester", user.Nickname)
	}
}

func TestTokenParseWithWrongKey(t *testing.T) {
	tm := NewTokenManager(TokenConfig{
		SecretKey: "key-one",
		Expiry:    time.Hour,
	})

	token, err := tm.Generate(1, "tester", "127.0.0.1")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := ParseTokenWithKey(token, "key-two"); err == nil {
		t.Error("Parse with wrong key should fail")
	}
}

func TestTokenValidateExpired(t *testing.T) {
	tm := NewTokenManager(TokenConfig{
		SecretKey: "test-secret-key",
		Expiry:    -time.Hour,
	})

	token, err := tm.Generate(1, "tester", "127.0.0.1")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if err := tm.Validate(token); err == nil {
		t.Error("Validate should fail for an expired token")
	}
}
