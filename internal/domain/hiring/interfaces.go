package hiring

import (
	"context"

	"github.com/worklane/worklane/internal/domain/posting"
	"github.com/worklane/worklane/internal/domain/proposal"
)

// ProposalRepository provides proposal lookups for precondition checks.
type ProposalRepository interface {
	Get(ctx context.Context, id string) (*proposal.Proposal, error)
}

// PostingRepository provides posting lookups for precondition checks.
type PostingRepository interface {
	Get(ctx context.Context, id string) (*posting.Posting, error)
}

// HireRepository commits the hire transition atomically: the posting flips
// open to assigned and the chosen proposal pending to hired, both guarded by
// compare-and-swap predicates, and every sibling proposal is rejected. Either
// all three updates commit or none are visible.
type HireRepository interface {
	CommitHire(ctx context.Context, postingID, proposalID string) (*posting.Posting, *proposal.Proposal, error)
}
