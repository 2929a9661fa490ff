package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/worklane/worklane/internal/auth"
)

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokens("test-secret")
	signed, err := tokens.Issue("acct1", "ada@example.com")
	require.NoError(t, err)

	var seenAccount string
	handler := AuthMiddleware(tokens, "worklane_token")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenAccount, _ = AccountFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "worklane_token", Value: signed})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "acct1", seenAccount)
	})

	t.Run("missing cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "worklane_token", Value: "garbage"})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
