package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a conditional update matches zero rows
	ErrConflict = errors.New("conflict: entity was modified concurrently")

	// ErrPostingConflict means the posting left the open state before the
	// update could apply. Satisfies errors.Is(err, ErrConflict).
	ErrPostingConflict = fmt.Errorf("posting already assigned: %w", ErrConflict)

	// ErrProposalConflict means the proposal left the pending state before
	// the update could apply. Satisfies errors.Is(err, ErrConflict).
	ErrProposalConflict = fmt.Errorf("proposal already processed: %w", ErrConflict)

	// ErrForeignKeyViolation is returned when a foreign key constraint fails
	ErrForeignKeyViolation = errors.New("foreign key violation")

	// ErrDuplicate is returned when a unique constraint fails
	ErrDuplicate = errors.New("duplicate entity")

	// ErrUnavailable is returned when the store cannot provide transactional
	// guarantees; the whole operation is safe to retry.
	ErrUnavailable = errors.New("storage unavailable")
)
