package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/worklane/worklane/internal/domain/posting"
	"github.com/worklane/worklane/internal/repository"
)

// PostingRepository implements posting.Repository for SQLite
type PostingRepository struct {
	db *DB
}

var _ posting.Repository = (*PostingRepository)(nil)

// NewPostingRepository creates a new PostingRepository
func NewPostingRepository(db *DB) *PostingRepository {
	return &PostingRepository{db: db}
}

// Create creates a new posting
func (r *PostingRepository) Create(ctx context.Context, p *posting.Posting) error {
	query := `
		INSERT INTO postings (id, owner_id, title, description, budget, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.OwnerID,
		p.Title,
		p.Description,
		p.Budget,
		p.Status,
		p.CreatedAt,
		p.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create posting: %w", err)
	}

	return nil
}

// Get retrieves a posting by ID
func (r *PostingRepository) Get(ctx context.Context, id string) (*posting.Posting, error) {
	query := `
		SELECT id, owner_id, title, description, budget, status, created_at, updated_at
		FROM postings
		WHERE id = ?
	`

	var p posting.Posting
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&p.Budget,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get posting: %w", err)
	}

	return &p, nil
}

// List returns postings matching the given options, newest first
func (r *PostingRepository) List(ctx context.Context, opts posting.ListOptions) ([]posting.Posting, error) {
	query := `
		SELECT id, owner_id, title, description, budget, status, created_at, updated_at
		FROM postings
		WHERE 1 = 1
	`

	args := []any{}

	if opts.OwnerID != "" {
		query += " AND owner_id = ?"
		args = append(args, opts.OwnerID)
	}
	if opts.Status != "" {
		query += " AND status = ?"
		args = append(args, opts.Status)
	}
	if opts.TitleSearch != "" {
		query += " AND title LIKE ? ESCAPE '\\'"
		args = append(args, "%"+escapeLike(opts.TitleSearch)+"%")
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}
	defer rows.Close()

	var postings []posting.Posting
	for rows.Next() {
		var p posting.Posting
		err := rows.Scan(
			&p.ID,
			&p.OwnerID,
			&p.Title,
			&p.Description,
			&p.Budget,
			&p.Status,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan posting: %w", err)
		}
		postings = append(postings, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posting rows: %w", err)
	}

	return postings, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
