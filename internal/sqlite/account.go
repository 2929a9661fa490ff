package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/worklane/worklane/internal/domain/account"
	"github.com/worklane/worklane/internal/repository"
)

// AccountRepository implements account.Repository for SQLite
type AccountRepository struct {
	db *DB
}

var _ account.Repository = (*AccountRepository)(nil)

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, acct *account.Account) error {
	query := `
		INSERT INTO accounts (id, name, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		acct.ID,
		acct.Name,
		acct.Email,
		acct.PasswordHash,
		acct.CreatedAt,
		acct.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// Get retrieves an account by ID
func (r *AccountRepository) Get(ctx context.Context, id string) (*account.Account, error) {
	return r.getOne(ctx, `WHERE id = ?`, id)
}

// GetByEmail retrieves an account by email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	return r.getOne(ctx, `WHERE email = ?`, email)
}

func (r *AccountRepository) getOne(ctx context.Context, where string, arg any) (*account.Account, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM accounts ` + where

	var acct account.Account
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&acct.ID,
		&acct.Name,
		&acct.Email,
		&acct.PasswordHash,
		&acct.CreatedAt,
		&acct.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &acct, nil
}
