package hiring

import "errors"

var (
	// ErrProposalNotFound indicates the proposal doesn't exist.
	ErrProposalNotFound = errors.New("proposal not found")
	// ErrPostingNotFound indicates the referenced posting doesn't exist.
	ErrPostingNotFound = errors.New("posting not found")
	// ErrNotOwner indicates the requester does not own the posting.
	ErrNotOwner = errors.New("not the posting owner")
	// ErrPostingAssigned indicates another hire already resolved the posting.
	ErrPostingAssigned = errors.New("posting already assigned")
	// ErrProposalProcessed indicates the proposal already left the pending state.
	ErrProposalProcessed = errors.New("proposal already processed")
	// ErrUnavailable indicates the store could not provide transactional
	// guarantees. No partial state was committed; the call is safe to retry.
	ErrUnavailable = errors.New("hire temporarily unavailable")
)
