// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/cineview/cineview-server/internal/validators"
	"github.com/cineview/cineview-server/models"
)

type WatchlistValidationService struct {
	inner     WatchlistService
	validator validators.Validator
}

func NewWatchlistValidationService() WatchlistServiceWrapper {
	return &WatchlistValidationService{
		validator: validators.NewStructValidator(),
	}
}

func (v *WatchlistValidationService) List(ctx context.Context, ownerID int64) ([]models.WatchlistEntry, error) {
	return v.inner.List(ctx, ownerID)
}

func (v *WatchlistValidationService) Add(ctx context.Context, ownerID int64, req models.WatchlistCreate) (models.WatchlistEntry, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.WatchlistEntry{}, err
	}

	return v.inner.Add(ctx, ownerID, req)
}

func (v *WatchlistValidationService) Remove(ctx context.Context, ownerID, id int64) error {
	return v.inner.Remove(ctx, ownerID, id)
}

func (v *WatchlistValidationService) Contains(ctx context.Context, ownerID, movieID int64) (bool, error) {
	return v.inner.Contains(ctx, ownerID, movieID)
}

func (v *WatchlistValidationService) Wrap(wrapped WatchlistService) WatchlistService {
	v.inner = wrapped
	return v
}
