package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/cricket-team/internal/domain/admin"
)

const testAdminSecret = "0123456789abcdef0123456789abcdef"

func newAdminAuthService(now time.Time) *AdminAuthService {
	svc := NewAdminAuthService(AdminAuthConfig{Password: "s3cret", Secret: testAdminSecret, SessionTTL: time.Hour})
	svc.now = func() time.Time { return now }
	return svc
}

func TestAdminAuthService_LoginAndVerify(t *testing.T) {
	svc := newAdminAuthService(fixtureNow)

	session, err := svc.Login(t.Context(), "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if session.TokenType != "Bearer" || session.AccessToken == "" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if !session.ExpiresAt.Equal(fixtureNow.Add(time.Hour)) {
		t.Fatalf("unexpected expiry: %s", session.ExpiresAt)
	}

	principal, err := svc.VerifyAccessToken(t.Context(), " "+session.AccessToken+" ")
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if principal.Subject != admin.Subject || !principal.IssuedAt.Equal(fixtureNow) {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestAdminAuthService_Login_Rejects(t *testing.T) {
	svc := newAdminAuthService(fixtureNow)

	if _, err := svc.Login(t.Context(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Login(t.Context(), "guess"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	unset := NewAdminAuthService(AdminAuthConfig{Secret: testAdminSecret})
	if _, err := unset.Login(t.Context(), "anything"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized without a configured password, got %v", err)
	}
}

func TestAdminAuthService_VerifyAccessToken_Rejects(t *testing.T) {
	issuer := newAdminAuthService(fixtureNow)
	session, err := issuer.Login(t.Context(), "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	otherSecret := NewAdminAuthService(AdminAuthConfig{Password: "s3cret", Secret: "ffffffffffffffffffffffffffffffff"})
	otherSecret.now = fixedNow

	tests := []struct {
		name  string
		svc   *AdminAuthService
		token string
	}{
		{name: "empty", svc: issuer, token: "  "},
		{name: "garbage", svc: issuer, token: "not-a-jwt"},
		{name: "expired", svc: newAdminAuthService(fixtureNow.Add(2 * time.Hour)), token: session.AccessToken},
		{name: "wrong secret", svc: otherSecret, token: session.AccessToken},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.svc.VerifyAccessToken(t.Context(), tc.token); !errors.Is(err, ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}

func TestNewAdminAuthService_DefaultTTL(t *testing.T) {
	svc := NewAdminAuthService(AdminAuthConfig{Password: "pw", Secret: testAdminSecret})
	if svc.ttl != 7*24*time.Hour {
		t.Fatalf("expected seven day default ttl, got %s", svc.ttl)
	}
}
