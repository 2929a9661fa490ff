package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/worklane/worklane/internal/domain/posting"
	"github.com/worklane/worklane/internal/domain/proposal"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func insertAccount(t *testing.T, db *DB, id, email string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO accounts (id, name, email, password_hash) VALUES (?, ?, ?, ?)`,
		id, "Account "+id, email, "x",
	)
	require.NoError(t, err)
}

func insertPosting(t *testing.T, db *DB, id, ownerID string, status posting.Status) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO postings (id, owner_id, title, description, budget, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, ownerID, "Posting "+id, "A description long enough", "100", status, time.Now(), time.Now(),
	)
	require.NoError(t, err)
}

func insertProposal(t *testing.T, db *DB, id, postingID, proposerID string, status proposal.Status) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO proposals (id, posting_id, proposer_id, message, price, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, postingID, proposerID, "I can do this", "90", status, time.Now(), time.Now(),
	)
	require.NoError(t, err)
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{"accounts", "postings", "proposals"}
	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}
