// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cineview/cineview-server/internal/logger"
	"github.com/cineview/cineview-server/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntry(userID, movieID int64, addedAt time.Time) models.WatchlistEntry {
	return models.WatchlistEntry{
		UserID:     userID,
		MovieID:    movieID,
		MovieTitle: "Movie",
		AddedAt:    addedAt,
	}
}

func TestWatchlistRepository_CreateAndGet(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewWatchlistRepository(db, logger.Nop())
	ctx := context.Background()
	user := mustCreateUser(t, db, "w@example.com")

	entry := newEntry(user.ID, 550, baseTime)
	entry.PosterPath = ptr("/poster.jpg")

	created, err := repo.Create(ctx, entry)
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, int64(550), created.MovieID)
	require.NotNil(t, created.PosterPath)
	assert.Equal(t, "/poster.jpg", *created.PosterPath)
	assert.True(t, baseTime.Equal(created.AddedAt))

	got, err := repo.GetOwned(ctx, user.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

// TestWatchlistRepository_Uniqueness verifies at most one entry per
// (owner, movie), while another owner may add the same movie.
func TestWatchlistRepository_Uniqueness(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewWatchlistRepository(db, logger.Nop())
	ctx := context.Background()
	alice := mustCreateUser(t, db, "alice@example.com")
	bob := mustCreateUser(t, db, "bob@example.com")

	_, err := repo.Create(ctx, newEntry(alice.ID, 1, baseTime))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newEntry(alice.ID, 1, baseTime))
	assert.ErrorIs(t, err, ErrConflict)

	_, err = repo.Create(ctx, newEntry(bob.ID, 1, baseTime))
	assert.NoError(t, err)

	exists, err := repo.ExistsForOwner(ctx, alice.ID, 1)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsForOwner(ctx, alice.ID, 2)
	require.NoError(t, err)
	assert.False(t, exists)
}

// TestWatchlistRepository_Ownership verifies that a foreign row behaves
// exactly like a missing one.
func TestWatchlistRepository_Ownership(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewWatchlistRepository(db, logger.Nop())
	ctx := context.Background()
	alice := mustCreateUser(t, db, "alice@example.com")
	bob := mustCreateUser(t, db, "bob@example.com")

	entry, err := repo.Create(ctx, newEntry(alice.ID, 1, baseTime))
	require.NoError(t, err)

	_, err = repo.GetOwned(ctx, bob.ID, entry.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetOwned(ctx, alice.ID, entry.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.DeleteOwned(ctx, bob.ID, entry.ID), ErrNotFound)

	// still there for the owner
	list, err := repo.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.DeleteOwned(ctx, alice.ID, entry.ID))
	assert.ErrorIs(t, repo.DeleteOwned(ctx, alice.ID, entry.ID), ErrNotFound)
}

// TestWatchlistRepository_ListOrdering verifies newest first with id as the
// tie breaker, scoped to the owner.
func TestWatchlistRepository_ListOrdering(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewWatchlistRepository(db, logger.Nop())
	ctx := context.Background()
	alice := mustCreateUser(t, db, "alice@example.com")
	bob := mustCreateUser(t, db, "bob@example.com")

	oldest, err := repo.Create(ctx, newEntry(alice.ID, 1, baseTime))
	require.NoError(t, err)
	tieA, err := repo.Create(ctx, newEntry(alice.ID, 2, baseTime.Add(time.Hour)))
	require.NoError(t, err)
	tieB, err := repo.Create(ctx, newEntry(alice.ID, 3, baseTime.Add(time.Hour)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newEntry(bob.ID, 4, baseTime.Add(2*time.Hour)))
	require.NoError(t, err)

	list, err := repo.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{tieB.ID, tieA.ID, oldest.ID}, []int64{list[0].ID, list[1].ID, list[2].ID})

	empty, err := NewWatchlistRepository(db, logger.Nop()).ListByOwner(ctx, 12345)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

// ── driver error paths ────────────────────────────────────────────────────────

func TestWatchlistRepository_Create_PostgresUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWatchlistRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO watchlists \\(added_at,movie_id,movie_title,poster_path,user_id\\) VALUES \\(\\$1,\\$2,\\$3,\\$4,\\$5\\) RETURNING").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), newEntry(1, 1, baseTime))
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWatchlistRepository_ListByOwner_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWatchlistRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM watchlists WHERE user_id = \\$1 ORDER BY added_at DESC, id DESC").
		WithArgs(int64(1)).
		WillReturnError(errors.New("boom"))

	_, err := repo.ListByOwner(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestWatchlistRepository_ListByOwner_RowError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWatchlistRepository(db, logger.Nop())

	rows := sqlmock.NewRows(watchlistColumns).
		AddRow(1, 1, 10, "Movie", nil, baseTime).
		RowError(0, errors.New("row broke"))
	mock.ExpectQuery("SELECT (.+) FROM watchlists").WillReturnRows(rows)

	_, err := repo.ListByOwner(context.Background(), 1)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestWatchlistRepository_DeleteOwned_ExecError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWatchlistRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM watchlists WHERE \\(?id = \\$1 AND user_id = \\$2\\)?").
		WithArgs(int64(5), int64(1)).
		WillReturnError(errors.New("boom"))

	err := repo.DeleteOwned(context.Background(), 1, 5)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
