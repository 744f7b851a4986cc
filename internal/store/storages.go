// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/cineview/cineview-server/internal/logger"
)

// Storages groups every repository and the media store so they can be
// passed to the service layer as one value.
type Storages struct {
	UserRepository      UserRepository
	TokenRepository     TokenRepository
	WatchlistRepository WatchlistRepository
	ReviewRepository    ReviewRepository
	MediaStorage        MediaStorage
}

// NewStorages builds all repositories on db and a filesystem media store
// rooted at mediaDir.
func NewStorages(db *DB, mediaDir string, logger *logger.Logger) (*Storages, error) {
	media, err := NewMediaFileStorage(mediaDir, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, logger),
		TokenRepository:     NewTokenRepository(db, logger),
		WatchlistRepository: NewWatchlistRepository(db, logger),
		ReviewRepository:    NewReviewRepository(db, logger),
		MediaStorage:        media,
	}, nil
}
