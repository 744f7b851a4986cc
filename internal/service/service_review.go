// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cineview/cineview-server/internal/logger"
	"github.com/cineview/cineview-server/internal/store"
	"github.com/cineview/cineview-server/models"
)

// reviewPhotoField is the multipart field carrying a review photo.
const reviewPhotoField = "photo"

// reviewService implements ReviewService on a [store.ReviewRepository].
// Input is expected to be validated by a wrapper.
type reviewService struct {
	// reviewRepository is the ownership-scoped review store.
	reviewRepository store.ReviewRepository

	// media stores review photos and renders author avatars.
	media MediaService

	now    func() time.Time
	logger *logger.Logger
}

// NewReviewService returns the review service wrapped in request validation.
func NewReviewService(repo store.ReviewRepository, media MediaService, logger *logger.Logger) ReviewService {
	return NewReviewValidationService().Wrap(&reviewService{
		reviewRepository: repo,
		media:            media,
		now:              func() time.Time { return time.Now().UTC() },
		logger:           logger,
	})
}

func (s *reviewService) List(ctx context.Context, ownerID int64) ([]models.Review, error) {
	reviews, err := s.reviewRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", ownerID).Msg("listing reviews failed")
		return nil, fmt.Errorf("listing reviews failed: %w", err)
	}

	return reviews, nil
}

// Create stores a review for ownerID. A user can review a movie once. An
// attached photo is stored first and removed again if the insert fails.
func (s *reviewService) Create(ctx context.Context, ownerID int64, req models.ReviewCreate) (models.Review, error) {
	log := logger.FromContext(ctx)

	exists, err := s.reviewRepository.ExistsForOwner(ctx, ownerID, *req.MovieID)
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("review lookup failed")
		return models.Review{}, fmt.Errorf("review lookup failed: %w", err)
	}
	if exists {
		return models.Review{}, ErrAlreadyReviewed
	}

	var photo *string
	if req.Photo != nil {
		path, err := s.media.Attach(ctx, models.ReviewPhotos, *req.Photo)
		if err != nil {
			return models.Review{}, uploadFieldError(reviewPhotoField, err)
		}
		photo = &path
	}

	now := s.now()
	review, err := s.reviewRepository.Create(ctx, models.Review{
		UserID:     ownerID,
		MovieID:    *req.MovieID,
		MovieTitle: req.MovieTitle,
		Rating:     *req.Rating,
		Context:    req.Context,
		Content:    req.Content,
		PhotoPath:  photo,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		s.rollbackPhoto(ctx, photo)
		if errors.Is(err, store.ErrConflict) {
			return models.Review{}, ErrAlreadyReviewed
		}
		log.Err(err).Int64("user_id", ownerID).Msg("review creation failed")
		return models.Review{}, fmt.Errorf("review creation failed: %w", err)
	}

	return review, nil
}

func (s *reviewService) Get(ctx context.Context, ownerID, id int64) (models.Review, error) {
	review, err := s.reviewRepository.GetOwned(ctx, ownerID, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Review{}, ErrReviewNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", ownerID).Int64("id", id).Msg("review lookup failed")
		return models.Review{}, fmt.Errorf("review lookup failed: %w", err)
	}

	return review, nil
}

// Update applies the present fields of req. A new photo replaces the stored
// one, which is removed once the row is updated. An update without fields
// returns the review unchanged.
func (s *reviewService) Update(ctx context.Context, ownerID, id int64, req models.ReviewUpdate) (models.Review, error) {
	current, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return models.Review{}, err
	}
	if req.Empty() {
		return current, nil
	}

	changes := models.ReviewChanges{
		Rating:  req.Rating,
		Context: req.Context,
		Content: req.Content,
	}
	if req.Photo != nil {
		path, err := s.media.Attach(ctx, models.ReviewPhotos, *req.Photo)
		if err != nil {
			return models.Review{}, uploadFieldError(reviewPhotoField, err)
		}
		changes.PhotoPath = &path
	}

	updated, err := s.reviewRepository.Update(ctx, ownerID, id, changes, s.now())
	if err != nil {
		s.rollbackPhoto(ctx, changes.PhotoPath)
		if errors.Is(err, store.ErrNotFound) {
			return models.Review{}, ErrReviewNotFound
		}
		logger.FromContext(ctx).Err(err).Int64("user_id", ownerID).Int64("id", id).Msg("review update failed")
		return models.Review{}, fmt.Errorf("review update failed: %w", err)
	}

	if changes.PhotoPath != nil {
		if err = s.media.Remove(ctx, current.PhotoPath); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Int64("id", id).Msg("previous review photo was not removed")
		}
	}

	return updated, nil
}

// Delete removes the review and its photo.
func (s *reviewService) Delete(ctx context.Context, ownerID, id int64) error {
	log := logger.FromContext(ctx)

	current, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return err
	}

	err = s.reviewRepository.DeleteOwned(ctx, ownerID, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrReviewNotFound
	}
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Int64("id", id).Msg("review deletion failed")
		return fmt.Errorf("review deletion failed: %w", err)
	}

	if err = s.media.Remove(ctx, current.PhotoPath); err != nil {
		log.Warn().Err(err).Int64("id", id).Msg("review photo was not removed")
	}

	return nil
}

// ListByMovie collects every user's review of movieID with its author and
// the average rating rounded to one decimal.
func (s *reviewService) ListByMovie(ctx context.Context, movieID int64) (models.MovieReviews, error) {
	rows, err := s.reviewRepository.ListByMovie(ctx, movieID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("movie_id", movieID).Msg("listing movie reviews failed")
		return models.MovieReviews{}, fmt.Errorf("listing movie reviews failed: %w", err)
	}

	result := models.MovieReviews{
		Entries:    make([]models.MovieReview, 0, len(rows)),
		TotalCount: len(rows),
	}
	if len(rows) == 0 {
		return result, nil
	}

	sum := 0
	for _, row := range rows {
		sum += row.Rating
		result.Entries = append(result.Entries, models.MovieReview{
			Review: row.Review,
			User:   userSummary(row.Author, s.media),
		})
	}
	result.AverageRating = math.Round(float64(sum)/float64(len(rows))*10) / 10

	return result, nil
}

func (s *reviewService) rollbackPhoto(ctx context.Context, path *string) {
	if err := s.media.Remove(ctx, path); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("orphaned review photo was not removed")
	}
}
