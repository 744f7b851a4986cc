// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

const (
	// MinRating and MaxRating bound a review rating, both inclusive.
	MinRating = 1
	MaxRating = 10
)

// Review is a user's rating and write-up of a movie.
// The pair (UserID, MovieID) is unique.
type Review struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	MovieID    int64     `json:"movie_id"`
	MovieTitle string    `json:"movie_title"`
	Rating     int       `json:"rating"`
	Context    string    `json:"context"`
	Content    string    `json:"content"`
	PhotoPath  *string   `json:"photo_path"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Review model.
func (r Review) TableName() string {
	return "reviews"
}

// ReviewCreate is the payload of a "create review" request.
type ReviewCreate struct {
	MovieID    *int64  `json:"movie_id" validate:"required,gt=0"`
	MovieTitle string  `json:"movie_title" validate:"required,max=255"`
	Rating     *int    `json:"rating" validate:"required,min=1,max=10"`
	Context    string  `json:"context" validate:"required,max=100"`
	Content    string  `json:"content" validate:"required"`
	Photo      *Upload `json:"-" validate:"-"`
}

// ReviewUpdate is a partial update of a review. Nil fields keep their
// current value.
type ReviewUpdate struct {
	Rating  *int    `json:"rating" validate:"omitnil,min=1,max=10"`
	Context *string `json:"context" validate:"omitnil,min=1,max=100"`
	Content *string `json:"content" validate:"omitnil,min=1"`
	Photo   *Upload `json:"-" validate:"-"`
}

// Empty reports whether the update carries no changes at all.
func (u ReviewUpdate) Empty() bool {
	return u.Rating == nil && u.Context == nil && u.Content == nil && u.Photo == nil
}

// ReviewChanges is the column-level change set applied by the store.
// PhotoPath is set only when a new photo was attached.
type ReviewChanges struct {
	Rating    *int
	Context   *string
	Content   *string
	PhotoPath *string
}

// MovieReview is a review as shown on a movie page, joined with its author.
type MovieReview struct {
	Review
	User UserSummary `json:"user"`
}

// MovieReviews is the cross-user aggregation of reviews for one movie.
type MovieReviews struct {
	Entries       []MovieReview `json:"entries"`
	AverageRating float64       `json:"averageRating"`
	TotalCount    int           `json:"totalCount"`
}

// ReviewWithAuthor is a review joined with the account that wrote it, as
// read by the per-movie listing.
type ReviewWithAuthor struct {
	Review
	Author User
}
