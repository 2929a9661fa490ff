package posting

import (
	"context"

	"github.com/worklane/worklane/internal/domain/account"
)

// Repository provides persistence for postings.
type Repository interface {
	Create(ctx context.Context, p *Posting) error
	Get(ctx context.Context, id string) (*Posting, error)
	List(ctx context.Context, opts ListOptions) ([]Posting, error)
}

// AccountRepository provides owner lookups for posting details.
type AccountRepository interface {
	Get(ctx context.Context, id string) (*account.Account, error)
}
