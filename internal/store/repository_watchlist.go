// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/cineview/cineview-server/internal/logger"
	"github.com/cineview/cineview-server/models"
)

var watchlistColumns = []string{"id", "user_id", "movie_id", "movie_title", "poster_path", "added_at"}

// watchlistRepository is the SQL implementation of [WatchlistRepository] on
// top of the shared [ownedTable].
type watchlistRepository struct {
	*ownedTable[models.WatchlistEntry]
}

func NewWatchlistRepository(db *DB, logger *logger.Logger) WatchlistRepository {
	logger.Debug().Msg("creating watchlist repository")
	return &watchlistRepository{
		ownedTable: &ownedTable[models.WatchlistEntry]{
			db:       db,
			table:    models.WatchlistEntry{}.TableName(),
			columns:  watchlistColumns,
			recency:  "added_at",
			conflict: ErrConflict,
			scan:     scanWatchlistEntry,
		},
	}
}

func (r *watchlistRepository) Create(ctx context.Context, entry models.WatchlistEntry) (models.WatchlistEntry, error) {
	return r.insert(ctx, entry.UserID, map[string]any{
		"user_id":     entry.UserID,
		"movie_id":    entry.MovieID,
		"movie_title": entry.MovieTitle,
		"poster_path": entry.PosterPath,
		"added_at":    entry.AddedAt,
	})
}

func scanWatchlistEntry(row rowScanner) (models.WatchlistEntry, error) {
	var e models.WatchlistEntry
	err := row.Scan(&e.ID, &e.UserID, &e.MovieID, &e.MovieTitle, &e.PosterPath, &e.AddedAt)
	return e, err
}
