package posting

import "errors"

var (
	// ErrNotFound indicates the posting doesn't exist.
	ErrNotFound = errors.New("posting not found")
	// ErrInvalidInput indicates invalid input for posting operations.
	ErrInvalidInput = errors.New("invalid posting input")
)
