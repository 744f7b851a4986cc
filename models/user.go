// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account.
// Sensitive fields must never be exposed outside trusted boundaries: responses
// are always built from [UserView] or [UserSummary], never from User itself.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the globally unique login identifier.
	Email string `json:"email"`

	// Password holds the bcrypt hash of the user's password. Never plaintext,
	// never serialized.
	Password string `json:"-"`

	// ProfilePhoto is the storage path of the uploaded avatar, nil when the
	// user has not uploaded one.
	ProfilePhoto *string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserView is the public representation of the authenticated user's own
// profile. ProfilePhoto is always populated: either the public URL of the
// stored avatar or the default avatar URL.
type UserView struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ProfilePhoto string    `json:"profile_photo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserSummary is the minimal owner information shown next to content that
// is visible to other users (movie reviews, user directory).
type UserSummary struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ProfilePhoto string `json:"profile_photo"`
}

// ProfileUpdate carries the fields a user may change on their own profile.
type ProfileUpdate struct {
	Name  string  `json:"name" validate:"required,max=255"`
	Photo *Upload `json:"-" validate:"-"`
}
