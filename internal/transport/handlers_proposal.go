package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worklane/worklane/internal/domain/proposal"
)

type createProposalRequest struct {
	PostingID string `json:"posting_id"`
	Message   string `json:"message"`
	Price     string `json:"price"`
}

// HireEvent is the payload pushed to the hired proposer's live connections.
type HireEvent struct {
	PostingID    string `json:"postingId"`
	PostingTitle string `json:"postingTitle"`
}

func (s *Server) handleCreateProposal(w http.ResponseWriter, r *http.Request) {
	accountID, _ := AccountFromContext(r.Context())

	var req createProposalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.services.Proposals.Create(r.Context(), accountID, proposal.CreateRequest{
		PostingID: req.PostingID,
		Message:   req.Message,
		Price:     req.Price,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]*proposal.Proposal{"proposal": created})
}

func (s *Server) handleMyProposals(w http.ResponseWriter, r *http.Request) {
	accountID, _ := AccountFromContext(r.Context())

	proposals, err := s.services.Proposals.ListMine(r.Context(), accountID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if proposals == nil {
		proposals = []proposal.WithPosting{}
	}
	writeJSON(w, http.StatusOK, map[string][]proposal.WithPosting{"proposals": proposals})
}

func (s *Server) handleProposalsForPosting(w http.ResponseWriter, r *http.Request) {
	accountID, _ := AccountFromContext(r.Context())

	proposals, err := s.services.Proposals.ListForPosting(r.Context(), accountID, chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if proposals == nil {
		proposals = []proposal.Detail{}
	}
	writeJSON(w, http.StatusOK, map[string][]proposal.Detail{"proposals": proposals})
}

func (s *Server) handleHire(w http.ResponseWriter, r *http.Request) {
	accountID, _ := AccountFromContext(r.Context())

	result, err := s.services.Hiring.Hire(r.Context(), chi.URLParam(r, "id"), accountID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)

	// Best-effort realtime notification; the hire is already durable and a
	// missed delivery is never an error.
	delivered := s.dispatcher.Notify(result.Proposal.ProposerID, "hire", HireEvent{
		PostingID:    result.Posting.ID,
		PostingTitle: result.Posting.Title,
	})
	if s.logger != nil && !delivered {
		s.logger.Debug("hire notification dropped, proposer offline",
			"proposer_id", result.Proposal.ProposerID,
			"posting_id", result.Posting.ID,
		)
	}
}
