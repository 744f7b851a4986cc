// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/cineview/cineview-server/internal/service"
	"github.com/cineview/cineview-server/models"
)

const reviewPhotoField = "photo"

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	reviews, err := h.services.ReviewService.List(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "Reviews retrieved successfully", nonNil(reviews))
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ReviewCreate
	if isMultipart(r) {
		f, err := h.parseForm(w, r, reviewPhotoField)
		if err != nil {
			writeError(w, r, err)
			return
		}
		defer f.close()

		req = models.ReviewCreate{
			MovieID:    f.optInt64("movie_id"),
			MovieTitle: f.str("movie_title"),
			Rating:     f.optInt("rating"),
			Context:    f.str("context"),
			Content:    f.str("content"),
		}
		if err = f.err(); err != nil {
			writeError(w, r, err)
			return
		}
		if req.Photo, err = f.file(reviewPhotoField); err != nil {
			writeError(w, r, err)
			return
		}
	} else if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	review, err := h.services.ReviewService.Create(r.Context(), id.UserID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, "Review created successfully", review)
}

func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	reviewID, err := pathID(r, "id", service.ErrReviewNotFound)
	if err != nil {
		writeError(w, r, err)
		return
	}

	review, err := h.services.ReviewService.Get(r.Context(), id.UserID, reviewID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "Review retrieved successfully", review)
}

// updateReview applies a partial update. Fields that are not sent keep
// their value; a new photo replaces the stored one.
func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	reviewID, err := pathID(r, "id", service.ErrReviewNotFound)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ReviewUpdate
	if isMultipart(r) {
		f, err := h.parseForm(w, r, reviewPhotoField)
		if err != nil {
			writeError(w, r, err)
			return
		}
		defer f.close()

		req = models.ReviewUpdate{
			Rating:  f.optInt("rating"),
			Context: f.optStr("context"),
			Content: f.optStr("content"),
		}
		if err = f.err(); err != nil {
			writeError(w, r, err)
			return
		}
		if req.Photo, err = f.file(reviewPhotoField); err != nil {
			writeError(w, r, err)
			return
		}
	} else if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	review, err := h.services.ReviewService.Update(r.Context(), id.UserID, reviewID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "Review updated successfully", review)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	reviewID, err := pathID(r, "id", service.ErrReviewNotFound)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ReviewService.Delete(r.Context(), id.UserID, reviewID); err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "Review deleted successfully", nil)
}

// movieReviews is public: every user's review of one movie plus the
// rating aggregate.
func (h *Handler) movieReviews(w http.ResponseWriter, r *http.Request) {
	movieID, err := movieIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	reviews, err := h.services.ReviewService.ListByMovie(r.Context(), movieID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	reviews.Entries = nonNil(reviews.Entries)

	writeSuccess(w, r, http.StatusOK, "Reviews retrieved successfully", reviews)
}
