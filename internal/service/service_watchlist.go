// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cineview/cineview-server/internal/logger"
	"github.com/cineview/cineview-server/internal/store"
	"github.com/cineview/cineview-server/models"
)

// watchlistService implements WatchlistService on a [store.WatchlistRepository].
// Input is expected to be validated by a wrapper.
type watchlistService struct {
	watchlistRepository store.WatchlistRepository
	now                 func() time.Time
	logger              *logger.Logger
}

// NewWatchlistService returns the watchlist service wrapped in request
// validation.
func NewWatchlistService(repo store.WatchlistRepository, logger *logger.Logger) WatchlistService {
	return NewWatchlistValidationService().Wrap(&watchlistService{
		watchlistRepository: repo,
		now:                 func() time.Time { return time.Now().UTC() },
		logger:              logger,
	})
}

func (s *watchlistService) List(ctx context.Context, ownerID int64) ([]models.WatchlistEntry, error) {
	entries, err := s.watchlistRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", ownerID).Msg("listing watchlist failed")
		return nil, fmt.Errorf("listing watchlist failed: %w", err)
	}

	return entries, nil
}

// Add saves a movie for ownerID. A movie can be on a user's watchlist once.
func (s *watchlistService) Add(ctx context.Context, ownerID int64, req models.WatchlistCreate) (models.WatchlistEntry, error) {
	log := logger.FromContext(ctx)

	exists, err := s.watchlistRepository.ExistsForOwner(ctx, ownerID, *req.MovieID)
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("watchlist lookup failed")
		return models.WatchlistEntry{}, fmt.Errorf("watchlist lookup failed: %w", err)
	}
	if exists {
		return models.WatchlistEntry{}, ErrAlreadyInWatchlist
	}

	entry, err := s.watchlistRepository.Create(ctx, models.WatchlistEntry{
		UserID:     ownerID,
		MovieID:    *req.MovieID,
		MovieTitle: req.MovieTitle,
		PosterPath: req.PosterPath,
		AddedAt:    s.now(),
	})
	if errors.Is(err, store.ErrConflict) {
		return models.WatchlistEntry{}, ErrAlreadyInWatchlist
	}
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("adding to watchlist failed")
		return models.WatchlistEntry{}, fmt.Errorf("adding to watchlist failed: %w", err)
	}

	return entry, nil
}

func (s *watchlistService) Remove(ctx context.Context, ownerID, id int64) error {
	err := s.watchlistRepository.DeleteOwned(ctx, ownerID, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrWatchlistEntryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", ownerID).Int64("id", id).Msg("removing from watchlist failed")
		return fmt.Errorf("removing from watchlist failed: %w", err)
	}

	return nil
}

func (s *watchlistService) Contains(ctx context.Context, ownerID, movieID int64) (bool, error) {
	exists, err := s.watchlistRepository.ExistsForOwner(ctx, ownerID, movieID)
	if err != nil {
		return false, fmt.Errorf("watchlist lookup failed: %w", err)
	}

	return exists, nil
}
