package proposal

import (
	"time"

	"github.com/worklane/worklane/internal/domain/posting"
)

// Status represents the lifecycle state of a proposal. A proposal leaves
// pending exactly once and never returns to it.
type Status string

const (
	StatusPending  Status = "pending"
	StatusHired    Status = "hired"
	StatusRejected Status = "rejected"
)

// Proposal is a bid submitted by a prospective worker against a posting.
// Price is an opaque string, never parsed by the core.
type Proposal struct {
	ID         string    `json:"id"`
	PostingID  string    `json:"posting_id"`
	ProposerID string    `json:"proposer_id"`
	Message    string    `json:"message"`
	Price      string    `json:"price"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Detail is the owner-facing view of a proposal, carrying the proposer's
// public identity.
type Detail struct {
	ID            string `json:"id"`
	Price         string `json:"price"`
	Status        Status `json:"status"`
	Message       string `json:"message"`
	ProposerName  string `json:"proposer_name"`
	ProposerEmail string `json:"proposer_email,omitempty"`
}

// WithPosting is the proposer-facing view of a proposal, carrying a
// reference to the posting it targets.
type WithPosting struct {
	ID      string       `json:"id"`
	Price   string       `json:"price"`
	Status  Status       `json:"status"`
	Message string       `json:"message"`
	Posting *posting.Ref `json:"posting"`
}
