// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/cineview/cineview-server/models"
)

// AuthService owns account credentials and the bearer token lifecycle.
type AuthService interface {
	// Register creates an account and signs it in with a fresh token.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthPayload, error)
	// Login checks credentials and issues a fresh token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthPayload, error)
	// Logout revokes the token the caller authenticated with.
	Logout(ctx context.Context, identity models.Identity) error
	// Resolve maps a plaintext bearer token to the identity it belongs to.
	Resolve(ctx context.Context, plainToken string) (models.Identity, error)
	ChangePassword(ctx context.Context, identity models.Identity, req models.ChangePasswordRequest) error
}

// UserService exposes profiles.
type UserService interface {
	Profile(ctx context.Context, identity models.Identity) (models.UserView, error)
	UpdateProfile(ctx context.Context, identity models.Identity, update models.ProfileUpdate) (models.UserView, error)
	List(ctx context.Context) ([]models.UserSummary, error)
}

// WatchlistService manages the caller's watchlist.
type WatchlistService interface {
	List(ctx context.Context, ownerID int64) ([]models.WatchlistEntry, error)
	Add(ctx context.Context, ownerID int64, req models.WatchlistCreate) (models.WatchlistEntry, error)
	Remove(ctx context.Context, ownerID, id int64) error
	Contains(ctx context.Context, ownerID, movieID int64) (bool, error)
}

// ReviewService manages the caller's reviews and the public per-movie view.
type ReviewService interface {
	List(ctx context.Context, ownerID int64) ([]models.Review, error)
	Create(ctx context.Context, ownerID int64, req models.ReviewCreate) (models.Review, error)
	Get(ctx context.Context, ownerID, id int64) (models.Review, error)
	Update(ctx context.Context, ownerID, id int64, req models.ReviewUpdate) (models.Review, error)
	Delete(ctx context.Context, ownerID, id int64) error
	ListByMovie(ctx context.Context, movieID int64) (models.MovieReviews, error)
}

// MediaService validates and stores uploaded images.
type MediaService interface {
	// Attach validates upload and stores it under kind. It returns the
	// storage path of the new file. A file it replaces is removed by the
	// caller once the owning row points at the new path.
	Attach(ctx context.Context, kind models.MediaKind, upload models.Upload) (string, error)
	// Remove deletes a stored file. A nil or empty path is a no-op.
	Remove(ctx context.Context, path *string) error
	// URL returns the public URL of a stored file, or the default avatar
	// when path is nil.
	URL(path *string) string
}

// AppInfoService describes the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
