package hiring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/worklane/worklane/internal/domain/posting"
	"github.com/worklane/worklane/internal/domain/proposal"
	"github.com/worklane/worklane/internal/repository"
)

// Service coordinates the hire transition. It holds no locks of its own:
// concurrent hires on the same posting race at the store's transaction
// boundary, so the guarantee holds across independent service instances.
type Service struct {
	proposals ProposalRepository
	postings  PostingRepository
	hires     HireRepository
	logger    *slog.Logger
}

// NewService creates a new hiring service.
func NewService(proposals ProposalRepository, postings PostingRepository, hires HireRepository, logger *slog.Logger) *Service {
	return &Service{
		proposals: proposals,
		postings:  postings,
		hires:     hires,
		logger:    logger,
	}
}

// Result carries the committed outcome of a hire.
type Result struct {
	Posting  *posting.Posting   `json:"posting"`
	Proposal *proposal.Proposal `json:"hiredProposal"`
}

// Hire accepts the proposal on behalf of requesterID, assigning its posting
// and rejecting every competing proposal in one atomic commit. Exactly one
// of any set of concurrent hires on the same posting succeeds; the rest
// observe ErrPostingAssigned or ErrProposalProcessed.
func (s *Service) Hire(ctx context.Context, proposalID, requesterID string) (*Result, error) {
	chosen, err := s.proposals.Get(ctx, proposalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("loading proposal: %w", err)
	}

	target, err := s.postings.Get(ctx, chosen.PostingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostingNotFound
		}
		return nil, fmt.Errorf("loading posting: %w", err)
	}

	if target.OwnerID != requesterID {
		return nil, ErrNotOwner
	}
	if target.Status != posting.StatusOpen {
		return nil, ErrPostingAssigned
	}

	// The checks above are advisory; the commit re-asserts both states via
	// CAS so a racing hire between check and commit still loses cleanly.
	assigned, hired, err := s.hires.CommitHire(ctx, target.ID, chosen.ID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPostingConflict):
			return nil, ErrPostingAssigned
		case errors.Is(err, repository.ErrProposalConflict):
			return nil, ErrProposalProcessed
		case errors.Is(err, repository.ErrUnavailable):
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		default:
			return nil, fmt.Errorf("committing hire: %w", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("proposal hired",
			"posting_id", assigned.ID,
			"proposal_id", hired.ID,
			"proposer_id", hired.ProposerID,
		)
	}

	return &Result{Posting: assigned, Proposal: hired}, nil
}
