package account

import "errors"

var (
	// ErrNotFound indicates the account doesn't exist.
	ErrNotFound = errors.New("account not found")
	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already in use")
	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidInput indicates invalid input for account operations.
	ErrInvalidInput = errors.New("invalid account input")
)
