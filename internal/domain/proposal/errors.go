package proposal

import "errors"

var (
	// ErrNotFound indicates the proposal doesn't exist.
	ErrNotFound = errors.New("proposal not found")
	// ErrPostingNotFound indicates the target posting doesn't exist.
	ErrPostingNotFound = errors.New("posting not found")
	// ErrOwnPosting indicates an owner tried to propose on their own posting.
	ErrOwnPosting = errors.New("owners cannot propose on their own posting")
	// ErrPostingClosed indicates the posting is no longer open for proposals.
	ErrPostingClosed = errors.New("posting is not open")
	// ErrNotOwner indicates the requester does not own the posting.
	ErrNotOwner = errors.New("not the posting owner")
	// ErrInvalidInput indicates invalid input for proposal operations.
	ErrInvalidInput = errors.New("invalid proposal input")
)
