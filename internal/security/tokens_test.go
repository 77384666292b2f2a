package security

import (
	"testing"
	"time"
)

func TestTokenProvider_IssueAccessAndRefresh(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	sessionID, userID := "s1", "u1"

	access, accessJti, exp, err := p.IssueAccess(sessionID, userID)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if access == "" || accessJti == "" {
		t.Fatal("access token or jti empty")
	}
	if exp.Before(time.Now()) {
		t.Fatal("expires at in the past")
	}

	refresh, jti, refreshExp, err := p.IssueRefresh(sessionID, userID)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}
	if refresh == "" || jti == "" {
		t.Fatal("refresh token or jti empty")
	}
	if refreshExp.Before(time.Now()) {
		t.Fatal("refresh expires at in the past")
	}

	sid, jti2, uid, err := p.ValidateRefresh(refresh)
	if err != nil {
		t.Fatalf("ValidateRefresh: %v", err)
	}
	if sid != sessionID || jti2 != jti || uid != userID {
		t.Errorf("ValidateRefresh: got sessionID=%q jti=%q userID=%q", sid, jti2, uid)
	}
}

func TestTokenProvider_ValidateAccess(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	sessionID, userID := "s1", "u1"
	access, _, _, err := p.IssueAccess(sessionID, userID)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	sid, uid, err := p.ValidateAccess(access)
	if err != nil {
		t.Fatalf("ValidateAccess: %v", err)
	}
	if sid != sessionID || uid != userID {
		t.Errorf("ValidateAccess: got sessionID=%q userID=%q", sid, uid)
	}
}

func TestTokenProvider_ValidateAccessInvalid(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	if _, _, err := p.ValidateAccess("invalid-token"); err != ErrInvalidToken {
		t.Errorf("ValidateAccess invalid token: want ErrInvalidToken, got %v", err)
	}
}

func TestTokenProvider_ValidateRefreshInvalid(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	if _, _, _, err := p.ValidateRefresh("invalid-token"); err != ErrInvalidToken {
		t.Errorf("ValidateRefresh invalid token: want ErrInvalidToken, got %v", err)
	}
}

func TestTokenProvider_RejectsForeignIssuerAudience(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	access, _, _, err := p.IssueAccess("s1", "u1")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	other := NewTokenProvider(p.privateKey, p.publicKey, "other-issuer", "other-audience", time.Minute, time.Hour)
	if _, _, err := other.ValidateAccess(access); err != ErrInvalidToken {
		t.Errorf("ValidateAccess with wrong issuer/audience: want ErrInvalidToken, got %v", err)
	}
}
