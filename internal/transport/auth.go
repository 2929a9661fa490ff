package transport

import (
	"context"
	"net/http"

	"github.com/worklane/worklane/internal/auth"
)

type accountKey struct{}

// AccountFromContext returns the authenticated account ID from context, if
// present.
func AccountFromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(accountKey{}).(string)
	return accountID, ok
}

// AuthMiddleware enforces cookie-based token authentication.
func AuthMiddleware(tokens *auth.Tokens, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				writeMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := tokens.Verify(cookie.Value)
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), accountKey{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
