package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/worklane/worklane/internal/domain/posting"
	"github.com/worklane/worklane/internal/repository"
)

func TestPostingRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertAccount(t, db, "owner1", "owner1@example.com")

	repo := NewPostingRepository(db)
	now := time.Now()
	p := &posting.Posting{
		ID:          "g1",
		OwnerID:     "owner1",
		Title:       "Build a landing page",
		Description: "Responsive landing page for launch",
		Budget:      "500",
		Status:      posting.StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	require.NoError(t, repo.Create(ctx, p))

	loaded, err := repo.Get(ctx, "g1")
	require.NoError(t, err)
	require.Equal(t, p.Title, loaded.Title)
	require.Equal(t, posting.StatusOpen, loaded.Status)
	require.Equal(t, "owner1", loaded.OwnerID)
}

func TestPostingRepository_CreateUnknownOwner(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewPostingRepository(db)
	now := time.Now()
	p := &posting.Posting{
		ID:          "g1",
		OwnerID:     "ghost",
		Title:       "Title",
		Description: "Description here",
		Budget:      "10",
		Status:      posting.StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := repo.Create(ctx, p)
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}

func TestPostingRepository_ListFilters(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertAccount(t, db, "owner1", "owner1@example.com")
	insertAccount(t, db, "owner2", "owner2@example.com")
	insertPosting(t, db, "g1", "owner1", posting.StatusOpen)
	insertPosting(t, db, "g2", "owner1", posting.StatusAssigned)
	insertPosting(t, db, "g3", "owner2", posting.StatusOpen)

	repo := NewPostingRepository(db)

	open, err := repo.List(ctx, posting.ListOptions{Status: posting.StatusOpen})
	require.NoError(t, err)
	require.Len(t, open, 2)

	owned, err := repo.List(ctx, posting.ListOptions{OwnerID: "owner1"})
	require.NoError(t, err)
	require.Len(t, owned, 2)

	both, err := repo.List(ctx, posting.ListOptions{OwnerID: "owner1", Status: posting.StatusOpen})
	require.NoError(t, err)
	require.Len(t, both, 1)
	require.Equal(t, "g1", both[0].ID)
}

func TestPostingRepository_ListTitleSearch(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertAccount(t, db, "owner1", "owner1@example.com")

	repo := NewPostingRepository(db)
	now := time.Now()
	for id, title := range map[string]string{
		"g1": "Build a landing page",
		"g2": "Fix a CSS bug",
		"g3": "Landing page copywriting",
	} {
		require.NoError(t, repo.Create(ctx, &posting.Posting{
			ID: id, OwnerID: "owner1", Title: title,
			Description: "Description here", Budget: "10",
			Status: posting.StatusOpen, CreatedAt: now, UpdatedAt: now,
		}))
	}

	// SQLite LIKE is case-insensitive for ASCII.
	hits, err := repo.List(ctx, posting.ListOptions{TitleSearch: "landing"})
	require.NoError(t, err)
	require.Len(t, hits, 2)

	// LIKE metacharacters in the search term match literally.
	none, err := repo.List(ctx, posting.ListOptions{TitleSearch: "100%"})
	require.NoError(t, err)
	require.Empty(t, none)
}
