package auth

import (
	"testing"
	"time"
)

func testPrincipal() *Principal {
	roleID := 1
	return &Principal{ID: 42, LoginKey: "admin", RoleID: &roleID}
}

func TestTokenRoundTrip(t *testing.T) {
	codec, err := NewTokenCodec("test-secret")
	if err != nil {
		t.Fatalf("codec error: %v", err)
	}

	token, err := codec.Issue(testPrincipal(), VariantAdmin)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	claims, err := codec.Verify(token, VariantAdmin)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if claims.UserID != 42 || claims.LoginKey != "admin" || claims.Type != VariantAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.RoleID == nil || *claims.RoleID != 1 {
		t.Fatalf("expected role id 1, got %v", claims.RoleID)
	}
}

func TestTokenVariantMismatch(t *testing.T) {
	codec, _ := NewTokenCodec("test-secret")

	token, err := codec.Issue(testPrincipal(), VariantStudent)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	if _, err := codec.Verify(token, VariantTeacher); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for cross-variant token, got %v", err)
	}
	if _, err := codec.Verify(token, VariantStudent); err != nil {
		t.Fatalf("expected matching variant to verify, got %v", err)
	}
}

func TestTokenExpired(t *testing.T) {
	codec, _ := NewTokenCodec("test-secret")

	token, err := codec.IssueWithTTL(testPrincipal(), VariantAdmin, -time.Minute)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	if _, err := codec.Verify(token, VariantAdmin); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}

func TestTokenTampered(t *testing.T) {
	codec, _ := NewTokenCodec("test-secret")
	other, _ := NewTokenCodec("other-secret")

	token, err := other.Issue(testPrincipal(), VariantAdmin)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	if _, err := codec.Verify(token, VariantAdmin); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for foreign signature, got %v", err)
	}
	if _, err := codec.Verify("not-a-token", VariantAdmin); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for garbage input, got %v", err)
	}
	if _, err := codec.Verify("", VariantAdmin); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for empty input, got %v", err)
	}
}

func TestMissingSecret(t *testing.T) {
	if _, err := NewTokenCodec(""); err != ErrMissingSecret {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}
