// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// WatchlistEntry is a movie a user saved to watch later.
// The pair (UserID, MovieID) is unique.
type WatchlistEntry struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	MovieID    int64     `json:"movie_id"`
	MovieTitle string    `json:"movie_title"`
	PosterPath *string   `json:"poster_path"`
	AddedAt    time.Time `json:"added_at"`
}

// TableName returns the name of the database table
// associated with the WatchlistEntry model.
func (w WatchlistEntry) TableName() string {
	return "watchlists"
}

// WatchlistCreate is the payload of an "add to watchlist" request.
type WatchlistCreate struct {
	MovieID    *int64  `json:"movie_id" validate:"required,gt=0"`
	MovieTitle string  `json:"movie_title" validate:"required,max=255"`
	PosterPath *string `json:"poster_path" validate:"omitempty,max=255"`
}

// WatchlistCheck reports whether a movie is on the caller's watchlist.
type WatchlistCheck struct {
	InWatchlist bool `json:"in_watchlist"`
}
