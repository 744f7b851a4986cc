// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/cineview/cineview-server/internal/validators"
	"github.com/cineview/cineview-server/models"
)

// ReviewValidationService checks review payloads before they reach the
// wrapped ReviewService.
type ReviewValidationService struct {
	inner     ReviewService
	validator validators.Validator
}

func NewReviewValidationService() ReviewServiceWrapper {
	return &ReviewValidationService{
		validator: validators.NewStructValidator(),
	}
}

func (v *ReviewValidationService) List(ctx context.Context, ownerID int64) ([]models.Review, error) {
	return v.inner.List(ctx, ownerID)
}

func (v *ReviewValidationService) Create(ctx context.Context, ownerID int64, req models.ReviewCreate) (models.Review, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Review{}, err
	}

	return v.inner.Create(ctx, ownerID, req)
}

func (v *ReviewValidationService) Get(ctx context.Context, ownerID, id int64) (models.Review, error) {
	return v.inner.Get(ctx, ownerID, id)
}

// Update validates only the fields present in req.
func (v *ReviewValidationService) Update(ctx context.Context, ownerID, id int64, req models.ReviewUpdate) (models.Review, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Review{}, err
	}

	return v.inner.Update(ctx, ownerID, id, req)
}

func (v *ReviewValidationService) Delete(ctx context.Context, ownerID, id int64) error {
	return v.inner.Delete(ctx, ownerID, id)
}

func (v *ReviewValidationService) ListByMovie(ctx context.Context, movieID int64) (models.MovieReviews, error) {
	return v.inner.ListByMovie(ctx, movieID)
}

func (v *ReviewValidationService) Wrap(wrapped ReviewService) ReviewService {
	v.inner = wrapped
	return v
}
