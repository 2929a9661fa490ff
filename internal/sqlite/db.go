package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single pooled connection serializes writers (SQLite allows one
	// writer anyway) and keeps :memory: databases coherent across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema.
func (db *DB) RunMigrations() error {
	migration := `
-- Accounts table
CREATE TABLE IF NOT EXISTS accounts (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Postings table
CREATE TABLE IF NOT EXISTS postings (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    budget TEXT NOT NULL,
    status TEXT NOT NULL CHECK(status IN ('open', 'assigned')) DEFAULT 'open',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (owner_id) REFERENCES accounts(id)
);
CREATE INDEX IF NOT EXISTS idx_posting_owner ON postings(owner_id);
CREATE INDEX IF NOT EXISTS idx_posting_status ON postings(status);

-- Proposals table
CREATE TABLE IF NOT EXISTS proposals (
    id TEXT PRIMARY KEY,
    posting_id TEXT NOT NULL,
    proposer_id TEXT NOT NULL,
    message TEXT NOT NULL,
    price TEXT NOT NULL,
    status TEXT NOT NULL CHECK(status IN ('pending', 'hired', 'rejected')) DEFAULT 'pending',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (posting_id) REFERENCES postings(id),
    FOREIGN KEY (proposer_id) REFERENCES accounts(id)
);
CREATE INDEX IF NOT EXISTS idx_proposal_posting ON proposals(posting_id);
CREATE INDEX IF NOT EXISTS idx_proposal_proposer ON proposals(proposer_id);
CREATE INDEX IF NOT EXISTS idx_proposal_status ON proposals(status);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
