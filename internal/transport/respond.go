package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/worklane/worklane/internal/domain/account"
	"github.com/worklane/worklane/internal/domain/hiring"
	"github.com/worklane/worklane/internal/domain/posting"
	"github.com/worklane/worklane/internal/domain/proposal"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeDomainError maps domain sentinel errors to HTTP responses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, account.ErrInvalidInput),
		errors.Is(err, posting.ErrInvalidInput),
		errors.Is(err, proposal.ErrInvalidInput),
		errors.Is(err, proposal.ErrOwnPosting),
		errors.Is(err, proposal.ErrPostingClosed):
		writeMessage(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, account.ErrInvalidCredentials),
		errors.Is(err, account.ErrNotFound):
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")

	case errors.Is(err, proposal.ErrNotOwner),
		errors.Is(err, hiring.ErrNotOwner):
		writeMessage(w, http.StatusForbidden, "Not allowed")

	case errors.Is(err, posting.ErrNotFound),
		errors.Is(err, proposal.ErrPostingNotFound),
		errors.Is(err, hiring.ErrPostingNotFound):
		writeMessage(w, http.StatusNotFound, "Posting not found")

	case errors.Is(err, proposal.ErrNotFound),
		errors.Is(err, hiring.ErrProposalNotFound):
		writeMessage(w, http.StatusNotFound, "Proposal not found")

	case errors.Is(err, account.ErrEmailTaken):
		writeMessage(w, http.StatusConflict, "Email already in use")

	case errors.Is(err, hiring.ErrPostingAssigned):
		writeMessage(w, http.StatusConflict, "Posting already assigned")

	case errors.Is(err, hiring.ErrProposalProcessed):
		writeMessage(w, http.StatusConflict, "Proposal already processed")

	case errors.Is(err, hiring.ErrUnavailable):
		writeMessage(w, http.StatusServiceUnavailable, "Temporarily unavailable, retry")

	default:
		writeMessage(w, http.StatusInternalServerError, "Internal error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
