package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/tracklight/wellbeing/internal/errs"
	"github.com/tracklight/wellbeing/internal/httpx"
	"github.com/tracklight/wellbeing/internal/services"
)

type contextKey struct{}

var accountIDKey contextKey

// AccountID returns the authenticated account for the request. It is
// only present on requests that passed through Auth.
func AccountID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(accountIDKey).(uuid.UUID)
	return id, ok
}

// Auth is the guard in front of every protected route: it extracts
// the bearer token, verifies it, and passes the resolved account ID
// down through the request context. Missing and invalid tokens are
// indistinguishable to the client.
func Auth(tokens *services.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)

			accountID, err := tokens.Verify(token)
			if err != nil {
				httpx.Error(w, errs.New(errs.KindUnauthenticated, "Invalid or missing token"))
				return
			}

			ctx := context.WithValue(r.Context(), accountIDKey, accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header. Only
// the Bearer scheme is accepted; anything else counts as no token.
func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}
