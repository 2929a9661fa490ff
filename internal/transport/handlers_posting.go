package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worklane/worklane/internal/domain/posting"
)

type createPostingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Budget      string `json:"budget"`
}

func (s *Server) handleListPostings(w http.ResponseWriter, r *http.Request) {
	postings, err := s.services.Postings.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if postings == nil {
		postings = []posting.Posting{}
	}
	writeJSON(w, http.StatusOK, map[string][]posting.Posting{"postings": postings})
}

func (s *Server) handleMyPostings(w http.ResponseWriter, r *http.Request) {
	accountID, _ := AccountFromContext(r.Context())

	postings, err := s.services.Postings.ListOwned(r.Context(), accountID, r.URL.Query().Get("search"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if postings == nil {
		postings = []posting.Posting{}
	}
	writeJSON(w, http.StatusOK, map[string][]posting.Posting{"postings": postings})
}

func (s *Server) handleGetPosting(w http.ResponseWriter, r *http.Request) {
	detail, err := s.services.Postings.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*posting.Detail{"posting": detail})
}

func (s *Server) handleCreatePosting(w http.ResponseWriter, r *http.Request) {
	accountID, _ := AccountFromContext(r.Context())

	var req createPostingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.services.Postings.Create(r.Context(), accountID, posting.CreateRequest{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]*posting.Posting{"posting": created})
}
