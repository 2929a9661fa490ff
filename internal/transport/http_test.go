package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/worklane/worklane/internal/auth"
	"github.com/worklane/worklane/internal/domain/account"
	"github.com/worklane/worklane/internal/domain/hiring"
	"github.com/worklane/worklane/internal/domain/posting"
	"github.com/worklane/worklane/internal/domain/proposal"
	"github.com/worklane/worklane/internal/realtime"
	"github.com/worklane/worklane/internal/sqlite"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	accountRepo := sqlite.NewAccountRepository(db)
	postingRepo := sqlite.NewPostingRepository(db)
	proposalRepo := sqlite.NewProposalRepository(db)
	hireRepo := sqlite.NewHireRepository(db)

	registry := realtime.NewRegistry()

	return NewServer(Config{
		Services: Services{
			Accounts:  account.NewService(accountRepo, nil),
			Postings:  posting.NewService(postingRepo, accountRepo, nil),
			Proposals: proposal.NewService(proposalRepo, postingRepo, nil),
			Hiring:    hiring.NewService(proposalRepo, postingRepo, hireRepo, nil),
		},
		Registry:   registry,
		Dispatcher: realtime.NewDispatcher(registry, nil),
		Tokens:     auth.NewTokens("test-secret"),
		CookieName: "worklane_token",
	})
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "ok")
}

func TestRegisterAndMe(t *testing.T) {
	router := newTestRouter(t)

	body := `{"name":"Ada","email":"ada@example.com","password":"secret1"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	require.Equal(t, "worklane_token", cookies[0].Name)
	require.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "ada@example.com")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router := newTestRouter(t)

	body := `{"name":"Ada","email":"ada@example.com","password":"secret1"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/postings"},
		{http.MethodGet, "/api/postings/mine"},
		{http.MethodPost, "/api/proposals"},
		{http.MethodGet, "/api/proposals/mine"},
		{http.MethodPatch, "/api/proposals/b1/hire"},
		{http.MethodGet, "/api/events"},
	}
	for _, p := range paths {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(p.method, p.path, nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", p.method, p.path)
	}
}

func TestListPostingsIsPublic(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/postings", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"postings":[]`)
}
