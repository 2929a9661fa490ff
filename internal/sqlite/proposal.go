package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/worklane/worklane/internal/domain/posting"
	"github.com/worklane/worklane/internal/domain/proposal"
	"github.com/worklane/worklane/internal/repository"
)

// ProposalRepository implements proposal.Repository for SQLite
type ProposalRepository struct {
	db *DB
}

var _ proposal.Repository = (*ProposalRepository)(nil)

// NewProposalRepository creates a new ProposalRepository
func NewProposalRepository(db *DB) *ProposalRepository {
	return &ProposalRepository{db: db}
}

// Create creates a new proposal
func (r *ProposalRepository) Create(ctx context.Context, p *proposal.Proposal) error {
	query := `
		INSERT INTO proposals (id, posting_id, proposer_id, message, price, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.PostingID,
		p.ProposerID,
		p.Message,
		p.Price,
		p.Status,
		p.CreatedAt,
		p.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create proposal: %w", err)
	}

	return nil
}

// Get retrieves a proposal by ID
func (r *ProposalRepository) Get(ctx context.Context, id string) (*proposal.Proposal, error) {
	query := `
		SELECT id, posting_id, proposer_id, message, price, status, created_at, updated_at
		FROM proposals
		WHERE id = ?
	`

	var p proposal.Proposal
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.PostingID,
		&p.ProposerID,
		&p.Message,
		&p.Price,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	return &p, nil
}

// ListForPosting returns proposals for a posting with proposer identity,
// newest first
func (r *ProposalRepository) ListForPosting(ctx context.Context, postingID string) ([]proposal.Detail, error) {
	query := `
		SELECT p.id, p.price, p.status, p.message, a.name, a.email
		FROM proposals p
		JOIN accounts a ON a.id = p.proposer_id
		WHERE p.posting_id = ?
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, postingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	defer rows.Close()

	var details []proposal.Detail
	for rows.Next() {
		var d proposal.Detail
		var name, email string
		if err := rows.Scan(&d.ID, &d.Price, &d.Status, &d.Message, &name, &email); err != nil {
			return nil, fmt.Errorf("failed to scan proposal detail: %w", err)
		}
		d.ProposerName = name
		if strings.TrimSpace(d.ProposerName) == "" {
			d.ProposerName = email
		}
		d.ProposerEmail = email
		details = append(details, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating proposal rows: %w", err)
	}

	return details, nil
}

// ListByProposer returns a proposer's proposals with posting references,
// newest first
func (r *ProposalRepository) ListByProposer(ctx context.Context, proposerID string) ([]proposal.WithPosting, error) {
	query := `
		SELECT p.id, p.price, p.status, p.message, g.id, g.title, g.status
		FROM proposals p
		LEFT JOIN postings g ON g.id = p.posting_id
		WHERE p.proposer_id = ?
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, proposerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	defer rows.Close()

	var results []proposal.WithPosting
	for rows.Next() {
		var wp proposal.WithPosting
		var postingIDVal, title, status sql.NullString
		if err := rows.Scan(&wp.ID, &wp.Price, &wp.Status, &wp.Message, &postingIDVal, &title, &status); err != nil {
			return nil, fmt.Errorf("failed to scan proposal: %w", err)
		}
		if postingIDVal.Valid {
			wp.Posting = &posting.Ref{
				ID:     postingIDVal.String,
				Title:  title.String,
				Status: posting.Status(status.String),
			}
		}
		results = append(results, wp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating proposal rows: %w", err)
	}

	return results, nil
}
