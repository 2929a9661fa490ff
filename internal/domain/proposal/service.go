package proposal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/worklane/worklane/internal/domain/posting"
	"github.com/worklane/worklane/internal/repository"
)

// Service handles proposal business logic.
type Service struct {
	proposals Repository
	postings  PostingRepository
	logger    *slog.Logger
}

// NewService creates a new proposal service.
func NewService(proposals Repository, postings PostingRepository, logger *slog.Logger) *Service {
	return &Service{proposals: proposals, postings: postings, logger: logger}
}

// CreateRequest describes a proposal creation request.
type CreateRequest struct {
	PostingID string
	Message   string
	Price     string
}

// Create submits a pending proposal against an open posting. Owners may not
// propose on their own postings.
func (s *Service) Create(ctx context.Context, proposerID string, req CreateRequest) (*Proposal, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	target, err := s.postings.Get(ctx, req.PostingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostingNotFound
		}
		return nil, fmt.Errorf("loading posting: %w", err)
	}

	if target.OwnerID == proposerID {
		return nil, ErrOwnPosting
	}
	if target.Status != posting.StatusOpen {
		return nil, ErrPostingClosed
	}

	now := time.Now()
	p := &Proposal{
		ID:         uuid.NewString(),
		PostingID:  req.PostingID,
		ProposerID: proposerID,
		Message:    req.Message,
		Price:      req.Price,
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.proposals.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating proposal: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("proposal created", "proposal_id", p.ID, "posting_id", p.PostingID)
	}

	return p, nil
}

// ListForPosting returns proposals for a posting. Only the posting owner may
// see them.
func (s *Service) ListForPosting(ctx context.Context, requesterID, postingID string) ([]Detail, error) {
	target, err := s.postings.Get(ctx, postingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostingNotFound
		}
		return nil, fmt.Errorf("loading posting: %w", err)
	}

	if target.OwnerID != requesterID {
		return nil, ErrNotOwner
	}

	return s.proposals.ListForPosting(ctx, postingID)
}

// ListMine returns all proposals submitted by proposerID.
func (s *Service) ListMine(ctx context.Context, proposerID string) ([]WithPosting, error) {
	return s.proposals.ListByProposer(ctx, proposerID)
}

func validateCreate(req CreateRequest) error {
	if strings.TrimSpace(req.PostingID) == "" {
		return fmt.Errorf("%w: posting id is required", ErrInvalidInput)
	}
	if len(strings.TrimSpace(req.Message)) < 5 {
		return fmt.Errorf("%w: message must be at least 5 characters", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Price) == "" {
		return fmt.Errorf("%w: price is required", ErrInvalidInput)
	}
	return nil
}
