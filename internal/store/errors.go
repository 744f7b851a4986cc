// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a row does not exist or, for
	// ownership-scoped tables, exists but belongs to another user.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when an insert or update violates a uniqueness
	// rule, e.g. a second watchlist entry or review for the same movie.
	ErrConflict = errors.New("record already exists")

	// ErrEmailAlreadyExists is returned when registering a user whose email
	// is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidReference is returned when a foreign key points to a missing
	// row, e.g. a token for a deleted user.
	ErrInvalidReference = errors.New("referenced record does not exist")

	// ErrConstraintViolation is returned for NOT NULL and CHECK violations
	// that escaped request validation.
	ErrConstraintViolation = errors.New("constraint violation")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query with the
	// statement builder fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrStorageUnavailable is returned when a statement failed for a
	// transient reason, such as a lost connection or a lock timeout.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")

	// ErrScanningRows is returned when multi-row iteration fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// Media file storage errors.
var (
	// ErrInvalidMediaPath is returned for empty, absolute or escaping
	// relative paths.
	ErrInvalidMediaPath = errors.New("invalid media path")
)
