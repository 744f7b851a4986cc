// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"
	"time"

	"github.com/cineview/cineview-server/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with its generated id.
	// A taken email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// UpdateProfile sets the name and, when photo is non-nil, the profile
	// photo path.
	UpdateProfile(ctx context.Context, userID int64, name string, photo *string, updatedAt time.Time) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string, updatedAt time.Time) error
	ListUsers(ctx context.Context) ([]models.User, error)
}

// TokenRepository persists personal access tokens. Only digests are stored.
type TokenRepository interface {
	CreateToken(ctx context.Context, token models.Token) (models.Token, error)
	FindTokenByHash(ctx context.Context, tokenHash string) (models.Token, error)
	TouchToken(ctx context.Context, tokenID int64, usedAt time.Time) error
	DeleteToken(ctx context.Context, tokenID int64) error
}

// WatchlistRepository is the ownership-scoped store of watchlist entries.
// Every method that takes an ownerID treats rows of other users as missing.
type WatchlistRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]models.WatchlistEntry, error)
	Create(ctx context.Context, entry models.WatchlistEntry) (models.WatchlistEntry, error)
	GetOwned(ctx context.Context, ownerID, id int64) (models.WatchlistEntry, error)
	DeleteOwned(ctx context.Context, ownerID, id int64) error
	ExistsForOwner(ctx context.Context, ownerID, movieID int64) (bool, error)
}

// ReviewRepository is the ownership-scoped store of reviews.
type ReviewRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Review, error)
	Create(ctx context.Context, review models.Review) (models.Review, error)
	GetOwned(ctx context.Context, ownerID, id int64) (models.Review, error)
	// Update applies the non-nil fields of changes and bumps updated_at.
	Update(ctx context.Context, ownerID, id int64, changes models.ReviewChanges, updatedAt time.Time) (models.Review, error)
	DeleteOwned(ctx context.Context, ownerID, id int64) error
	ExistsForOwner(ctx context.Context, ownerID, movieID int64) (bool, error)
	// ListByMovie returns the reviews of every user for movieID, newest
	// first, each joined with its author.
	ListByMovie(ctx context.Context, movieID int64) ([]models.ReviewWithAuthor, error)
}

// MediaStorage stores uploaded files under slash-separated relative paths.
type MediaStorage interface {
	Save(ctx context.Context, path string, content io.Reader) error
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
}
