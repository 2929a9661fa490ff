package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worklane/worklane/internal/auth"
	"github.com/worklane/worklane/internal/domain/account"
	"github.com/worklane/worklane/internal/domain/hiring"
	"github.com/worklane/worklane/internal/domain/posting"
	"github.com/worklane/worklane/internal/domain/proposal"
	"github.com/worklane/worklane/internal/realtime"
)

// Services bundles the domain services the transport exposes.
type Services struct {
	Accounts  *account.Service
	Postings  *posting.Service
	Proposals *proposal.Service
	Hiring    *hiring.Service
}

// Server wires HTTP handlers.
type Server struct {
	services   Services
	registry   *realtime.Registry
	dispatcher *realtime.Dispatcher
	tokens     *auth.Tokens
	cookieName string
	logger     *slog.Logger
}

// Config configures the HTTP server.
type Config struct {
	Services   Services
	Registry   *realtime.Registry
	Dispatcher *realtime.Dispatcher
	Tokens     *auth.Tokens
	CookieName string
	Logger     *slog.Logger
}

// NewServer creates an HTTP router with all routes and middleware.
func NewServer(cfg Config) *chi.Mux {
	srv := &Server{
		services:   cfg.Services,
		registry:   cfg.Registry,
		dispatcher: cfg.Dispatcher,
		tokens:     cfg.Tokens,
		cookieName: cfg.CookieName,
		logger:     cfg.Logger,
	}

	authRequired := AuthMiddleware(srv.tokens, srv.cookieName)

	r := chi.NewRouter()

	r.Get("/health", srv.handleHealth)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", srv.handleRegister)
		r.Post("/login", srv.handleLogin)
		r.With(authRequired).Post("/logout", srv.handleLogout)
		r.With(authRequired).Get("/me", srv.handleMe)
	})

	r.Route("/api/postings", func(r chi.Router) {
		r.Get("/", srv.handleListPostings)
		r.With(authRequired).Get("/mine", srv.handleMyPostings)
		r.With(authRequired).Post("/", srv.handleCreatePosting)
		r.Get("/{id}", srv.handleGetPosting)
		r.With(authRequired).Get("/{id}/proposals", srv.handleProposalsForPosting)
	})

	r.Route("/api/proposals", func(r chi.Router) {
		r.Use(authRequired)
		r.Post("/", srv.handleCreateProposal)
		r.Get("/mine", srv.handleMyProposals)
		r.Patch("/{id}/hire", srv.handleHire)
	})

	r.With(authRequired).Get("/api/events", srv.handleEvents)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
