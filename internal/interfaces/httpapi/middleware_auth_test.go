package httpapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/cricket-team/internal/domain/admin"
	adminmock "github.com/riskibarqy/cricket-team/internal/mocks/domain/admin"
	"github.com/riskibarqy/cricket-team/internal/usecase"
	"github.com/stretchr/testify/mock"
)

func TestRequireAdmin_PassesPrincipal(t *testing.T) {
	verifier := adminmock.NewTokenVerifier(t)
	verifier.On("VerifyAccessToken", mock.Anything, "good-token").
		Return(admin.Principal{Subject: admin.Subject}, nil).Once()

	var subject string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, _ := principalFromContext(r.Context())
		subject = p.Subject
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer  good-token ")
	rec := httptest.NewRecorder()
	RequireAdmin(verifier, next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if subject != admin.Subject {
		t.Fatalf("principal not propagated, got %q", subject)
	}
}

func TestRequireAdmin_Rejects(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatalf("next handler must not run")
	})

	tests := []struct {
		name   string
		header string
		setup  func(v *adminmock.TokenVerifier)
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "empty token", header: "Bearer "},
		{
			name:   "verifier rejects",
			header: "Bearer expired",
			setup: func(v *adminmock.TokenVerifier) {
				v.On("VerifyAccessToken", mock.Anything, "expired").
					Return(admin.Principal{}, fmt.Errorf("%w: token expired", usecase.ErrUnauthorized)).Once()
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			verifier := adminmock.NewTokenVerifier(t)
			if tc.setup != nil {
				tc.setup(verifier)
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			RequireAdmin(verifier, next).ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
