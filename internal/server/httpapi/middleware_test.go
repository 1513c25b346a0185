package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finledger/finledger/internal/server/auth"
)

func TestProtectedRoutes_RejectMissingToken(t *testing.T) {
	router := newTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/validate"},
		{http.MethodGet, "/api/expenses"},
		{http.MethodPost, "/api/expenses"},
		{http.MethodDelete, "/api/expenses/some-id"},
		{http.MethodGet, "/api/investments"},
	}
	for _, tc := range paths {
		rec := doJSON(t, router, tc.method, tc.path, nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, rec.Code)
		}
		if resp := decodeResponse(t, rec); resp.Success {
			t.Fatalf("%s %s: expected failure envelope", tc.method, tc.path)
		}
	}
}

func TestProtectedRoutes_AcceptCookie(t *testing.T) {
	router := newTestRouter(t)
	register(t, router, "alice", "alice@x.com", "secret1")
	token, _ := login(t, router, "alice@x.com", "secret1")

	rec := doJSON(t, router, http.MethodGet, "/api/auth/validate", nil, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with cookie auth, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestProtectedRoutes_RejectExpiredToken(t *testing.T) {
	router := newTestRouter(t)

	token, err := auth.GenerateToken("u1", "a@x.com", "alice", "user", []byte(testSecret), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	rec := doJSON(t, router, http.MethodGet, "/api/expenses", nil, withBearer(token))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", rec.Code)
	}
}

func TestProtectedRoutes_RejectForeignSignature(t *testing.T) {
	router := newTestRouter(t)

	token, err := auth.GenerateToken("u1", "a@x.com", "alice", "user", []byte("other-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	rec := doJSON(t, router, http.MethodGet, "/api/expenses", nil, withBearer(token))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for foreign signature, got %d", rec.Code)
	}
}

func TestTokenFromRequest(t *testing.T) {
	valid, err := auth.GenerateToken("u1", "a@x.com", "alice", "user", []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{"bearer header", "Bearer " + valid, "", valid},
		{"lowercase scheme", "bearer " + valid, "", valid},
		{"cookie fallback", "", valid, valid},
		{"header wins over cookie", "Bearer header-token", "cookie-token", "header-token"},
		{"wrong scheme", "Basic dXNlcjpwYXNz", valid, ""},
		{"malformed header blocks fallback", "Bearer", valid, ""},
		{"nothing", "", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				r.AddCookie(&http.Cookie{Name: TokenCookieName, Value: tc.cookie})
			}
			if got := tokenFromRequest(r); got != tc.want {
				t.Fatalf("tokenFromRequest = %q, want %q", got, tc.want)
			}
		})
	}
}
