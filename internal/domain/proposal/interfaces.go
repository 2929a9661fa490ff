package proposal

import (
	"context"

	"github.com/worklane/worklane/internal/domain/posting"
)

// Repository provides persistence for proposals.
type Repository interface {
	Create(ctx context.Context, p *Proposal) error
	Get(ctx context.Context, id string) (*Proposal, error)
	ListForPosting(ctx context.Context, postingID string) ([]Detail, error)
	ListByProposer(ctx context.Context, proposerID string) ([]WithPosting, error)
}

// PostingRepository provides posting lookups for proposal rules.
type PostingRepository interface {
	Get(ctx context.Context, id string) (*posting.Posting, error)
}
