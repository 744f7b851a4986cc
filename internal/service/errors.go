// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/cineview/cineview-server/internal/store"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrOldPasswordIncorrect = errors.New("old password is incorrect")
	ErrTokenCreationFailed  = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Resource-specific conflicts and misses. They still match the generic store
// sentinels through errors.Is.
var (
	ErrAlreadyInWatchlist     = fmt.Errorf("%w: movie already in watchlist", store.ErrConflict)
	ErrAlreadyReviewed        = fmt.Errorf("%w: you have already reviewed this movie", store.ErrConflict)
	ErrWatchlistEntryNotFound = fmt.Errorf("%w: watchlist item not found", store.ErrNotFound)
	ErrReviewNotFound         = fmt.Errorf("%w: review not found", store.ErrNotFound)
	ErrUserNotFound           = fmt.Errorf("%w: user not found", store.ErrNotFound)
)

// Upload rejections. Each one matches ErrInvalidUpload.
var (
	ErrInvalidUpload     = errors.New("invalid upload")
	ErrUploadTooLarge    = fmt.Errorf("%w: file too large", ErrInvalidUpload)
	ErrUploadUnsupported = fmt.Errorf("%w: unsupported file type", ErrInvalidUpload)
	ErrUploadNotImage    = fmt.Errorf("%w: not a decodable image", ErrInvalidUpload)
)
