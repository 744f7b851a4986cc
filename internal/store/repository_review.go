// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cineview/cineview-server/internal/logger"
	"github.com/cineview/cineview-server/models"
)

var reviewColumns = []string{
	"id", "user_id", "movie_id", "movie_title", "rating",
	"context", "content", "photo_path", "created_at", "updated_at",
}

// reviewRepository is the SQL implementation of [ReviewRepository]. The
// ownership-scoped operations come from the embedded [ownedTable].
type reviewRepository struct {
	*ownedTable[models.Review]
}

func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		ownedTable: &ownedTable[models.Review]{
			db:       db,
			table:    models.Review{}.TableName(),
			columns:  reviewColumns,
			recency:  "created_at",
			conflict: ErrConflict,
			scan:     scanReview,
		},
	}
}

func (r *reviewRepository) Create(ctx context.Context, review models.Review) (models.Review, error) {
	return r.insert(ctx, review.UserID, map[string]any{
		"user_id":     review.UserID,
		"movie_id":    review.MovieID,
		"movie_title": review.MovieTitle,
		"rating":      review.Rating,
		"context":     review.Context,
		"content":     review.Content,
		"photo_path":  review.PhotoPath,
		"created_at":  review.CreatedAt,
		"updated_at":  review.UpdatedAt,
	})
}

func (r *reviewRepository) Update(ctx context.Context, ownerID, id int64, changes models.ReviewChanges, updatedAt time.Time) (models.Review, error) {
	set := map[string]any{"updated_at": updatedAt}
	if changes.Rating != nil {
		set["rating"] = *changes.Rating
	}
	if changes.Context != nil {
		set["context"] = *changes.Context
	}
	if changes.Content != nil {
		set["content"] = *changes.Content
	}
	if changes.PhotoPath != nil {
		set["photo_path"] = *changes.PhotoPath
	}

	return r.update(ctx, ownerID, id, set)
}

func (r *reviewRepository) ListByMovie(ctx context.Context, movieID int64) ([]models.ReviewWithAuthor, error) {
	log := logger.FromContext(ctx)

	columns := make([]string, 0, len(reviewColumns)+3)
	for _, c := range reviewColumns {
		columns = append(columns, "r."+c)
	}
	columns = append(columns, "u.name", "u.email", "u.profile_photo")

	query, args, err := r.db.builder.
		Select(columns...).
		From("reviews r").
		Join("users u ON u.id = r.user_id").
		Where(sq.Eq{"r.movie_id": movieID}).
		OrderBy("r.created_at DESC", "r.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "reviewRepository.ListByMovie").
			Int64("movie_id", movieID).
			Msg("failed to execute query for listing movie reviews")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.ReviewWithAuthor, 0)
	for rows.Next() {
		var item models.ReviewWithAuthor
		rv := &item.Review

		scanErr := rows.Scan(
			&rv.ID, &rv.UserID, &rv.MovieID, &rv.MovieTitle, &rv.Rating,
			&rv.Context, &rv.Content, &rv.PhotoPath, &rv.CreatedAt, &rv.UpdatedAt,
			&item.Author.Name, &item.Author.Email, &item.Author.ProfilePhoto,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "reviewRepository.ListByMovie").
				Int64("movie_id", movieID).
				Msg("failed to scan movie review row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		item.Author.ID = rv.UserID

		result = append(result, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "reviewRepository.ListByMovie").
			Int64("movie_id", movieID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return result, nil
}

func scanReview(row rowScanner) (models.Review, error) {
	var r models.Review
	err := row.Scan(
		&r.ID, &r.UserID, &r.MovieID, &r.MovieTitle, &r.Rating,
		&r.Context, &r.Content, &r.PhotoPath, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}
