package posting

import (
	"time"

	"github.com/worklane/worklane/internal/domain/account"
)

// Status represents the lifecycle state of a posting.
type Status string

const (
	StatusOpen     Status = "open"
	StatusAssigned Status = "assigned"
)

// Posting is a unit of work open for proposals. Budget is an opaque string;
// the core never interprets it numerically.
type Posting struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      string    `json:"budget"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Detail is a posting together with its owner's public reference.
type Detail struct {
	Posting
	Owner *account.Ref `json:"owner"`
}

// Ref is a lightweight reference to a posting.
type Ref struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status Status `json:"status"`
}

// ListOptions provides filtering options for listing postings.
type ListOptions struct {
	OwnerID     string
	Status      Status
	TitleSearch string
}
