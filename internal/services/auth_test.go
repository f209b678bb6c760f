package services

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	s := NewAuthService(nil, "test-secret")

	token, err := s.GenerateToken(42)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	adminID, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if adminID != 42 {
		t.Errorf("expected admin 42, got %d", adminID)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewAuthService(nil, "secret-a")
	verifier := NewAuthService(nil, "secret-b")

	token, err := issuer.GenerateToken(1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Error("token signed with a different secret must be rejected")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	s := NewAuthService(nil, "test-secret")

	if _, err := s.ValidateToken("not-a-token"); err == nil {
		t.Error("malformed token must be rejected")
	}
}
