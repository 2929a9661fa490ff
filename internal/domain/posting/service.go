package posting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/worklane/worklane/internal/repository"
)

// Service handles posting business logic.
type Service struct {
	postings Repository
	accounts AccountRepository
	logger   *slog.Logger
}

// NewService creates a new posting service.
func NewService(postings Repository, accounts AccountRepository, logger *slog.Logger) *Service {
	return &Service{postings: postings, accounts: accounts, logger: logger}
}

// CreateRequest describes a posting creation request.
type CreateRequest struct {
	Title       string
	Description string
	Budget      string
}

// Create creates a new open posting owned by ownerID.
func (s *Service) Create(ctx context.Context, ownerID string, req CreateRequest) (*Posting, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &Posting{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Status:      StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.postings.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating posting: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("posting created", "posting_id", p.ID, "owner_id", ownerID)
	}

	return p, nil
}

// Get returns a posting with its owner's public reference.
func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	p, err := s.postings.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting posting: %w", err)
	}

	detail := &Detail{Posting: *p}
	owner, err := s.accounts.Get(ctx, p.OwnerID)
	if err == nil {
		ref := owner.Ref()
		detail.Owner = &ref
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("getting owner: %w", err)
	}

	return detail, nil
}

// List returns open postings, optionally filtered by a title search.
func (s *Service) List(ctx context.Context, search string) ([]Posting, error) {
	return s.postings.List(ctx, ListOptions{
		Status:      StatusOpen,
		TitleSearch: search,
	})
}

// ListOwned returns all postings owned by ownerID, optionally filtered.
func (s *Service) ListOwned(ctx context.Context, ownerID, search string) ([]Posting, error) {
	return s.postings.List(ctx, ListOptions{
		OwnerID:     ownerID,
		TitleSearch: search,
	})
}

func validateCreate(req CreateRequest) error {
	if len(strings.TrimSpace(req.Title)) < 3 {
		return fmt.Errorf("%w: title must be at least 3 characters", ErrInvalidInput)
	}
	if len(strings.TrimSpace(req.Description)) < 10 {
		return fmt.Errorf("%w: description must be at least 10 characters", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Budget) == "" {
		return fmt.Errorf("%w: budget is required", ErrInvalidInput)
	}
	return nil
}
