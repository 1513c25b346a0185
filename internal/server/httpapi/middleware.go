package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/finledger/finledger/internal/server/auth"
	"github.com/gorilla/mux"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// TokenCookieName is the cookie carrying the session token for
// cookie-style clients; API-style clients use the Authorization header.
const TokenCookieName = "token"

// ClaimsFromContext returns the verified claims the middleware attached to
// the request. Downstream handlers trust the injected identity without
// re-verifying it.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// tokenFromRequest extracts the session token, preferring the bearer header
// and falling back to the token cookie. Both acceptance paths behave the
// same on every protected route.
func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.Fields(header)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}

	if c, err := r.Cookie(TokenCookieName); err == nil {
		return c.Value
	}
	return ""
}

// RequireAuth verifies the inbound token and injects its claims into the
// request context. A missing, malformed, expired, or forged token yields
// 401. No database lookup happens here; the signature alone is trusted.
func RequireAuth(secretKey []byte) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				writeFailure(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			claims, err := auth.ParseToken(token, secretKey)
			if err != nil {
				writeFailure(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
