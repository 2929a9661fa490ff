package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/worklane/worklane/internal/domain/hiring"
	"github.com/worklane/worklane/internal/domain/posting"
	"github.com/worklane/worklane/internal/domain/proposal"
	"github.com/worklane/worklane/internal/repository"
)

// HireRepository implements hiring.HireRepository for SQLite
type HireRepository struct {
	db *DB
}

var _ hiring.HireRepository = (*HireRepository)(nil)

// NewHireRepository creates a new HireRepository
func NewHireRepository(db *DB) *HireRepository {
	return &HireRepository{db: db}
}

// CommitHire flips the posting open->assigned and the chosen proposal
// pending->hired, then rejects every sibling proposal, all inside one
// transaction. Both status flips are compare-and-swap updates: a conditional
// update that matches zero rows means a concurrent hire won the race, and
// the whole transaction rolls back with no partial state.
//
// The sibling reject is deliberately unconditional: once the posting CAS has
// succeeded inside this transaction the posting is no longer open, so no
// sibling can concurrently reach hired. This would need per-sibling
// predicates if proposer-initiated withdrawal is ever added.
func (r *HireRepository) CommitHire(ctx context.Context, postingID, proposalID string) (*posting.Posting, *proposal.Proposal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: begin transaction: %w", repository.ErrUnavailable, err)
	}
	defer tx.Rollback()

	now := time.Now()

	res, err := tx.ExecContext(ctx,
		`UPDATE postings SET status = ?, updated_at = ? WHERE id = ? AND status = ?`,
		posting.StatusAssigned, now, postingID, posting.StatusOpen,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: assign posting: %w", repository.ErrUnavailable, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, nil, fmt.Errorf("%w: assign posting: %w", repository.ErrUnavailable, err)
	} else if n == 0 {
		return nil, nil, repository.ErrPostingConflict
	}

	res, err = tx.ExecContext(ctx,
		`UPDATE proposals SET status = ?, updated_at = ? WHERE id = ? AND status = ?`,
		proposal.StatusHired, now, proposalID, proposal.StatusPending,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: hire proposal: %w", repository.ErrUnavailable, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, nil, fmt.Errorf("%w: hire proposal: %w", repository.ErrUnavailable, err)
	} else if n == 0 {
		return nil, nil, repository.ErrProposalConflict
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE proposals SET status = ?, updated_at = ? WHERE posting_id = ? AND id <> ?`,
		proposal.StatusRejected, now, postingID, proposalID,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reject sibling proposals: %w", repository.ErrUnavailable, err)
	}

	assigned, err := getPostingTx(ctx, tx, postingID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: load assigned posting: %w", repository.ErrUnavailable, err)
	}
	hired, err := getProposalTx(ctx, tx, proposalID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: load hired proposal: %w", repository.ErrUnavailable, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("%w: commit: %w", repository.ErrUnavailable, err)
	}

	return assigned, hired, nil
}

func getPostingTx(ctx context.Context, tx *sql.Tx, id string) (*posting.Posting, error) {
	var p posting.Posting
	err := tx.QueryRowContext(ctx,
		`SELECT id, owner_id, title, description, budget, status, created_at, updated_at
		 FROM postings WHERE id = ?`, id,
	).Scan(&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.Budget, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func getProposalTx(ctx context.Context, tx *sql.Tx, id string) (*proposal.Proposal, error) {
	var p proposal.Proposal
	err := tx.QueryRowContext(ctx,
		`SELECT id, posting_id, proposer_id, message, price, status, created_at, updated_at
		 FROM proposals WHERE id = ?`, id,
	).Scan(&p.ID, &p.PostingID, &p.ProposerID, &p.Message, &p.Price, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
