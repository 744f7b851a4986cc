// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrorClass is the dialect-independent category of a failed database
// operation, as returned by [ErrorClassificator.Classify].
type ErrorClass int

const (
	// ClassUnknown covers every error no classifier recognises.
	ClassUnknown ErrorClass = iota

	// ClassUniqueViolation is a UNIQUE or PRIMARY KEY constraint failure.
	ClassUniqueViolation

	// ClassForeignKeyViolation is a FOREIGN KEY constraint failure.
	ClassForeignKeyViolation

	// ClassNotNullViolation is a NOT NULL constraint failure.
	ClassNotNullViolation

	// ClassCheckViolation is a CHECK constraint failure.
	ClassCheckViolation

	// ClassConnection is a transient connectivity or locking failure that
	// may succeed if retried.
	ClassConnection
)

func (c ErrorClass) String() string {
	switch c {
	case ClassUniqueViolation:
		return "unique_violation"
	case ClassForeignKeyViolation:
		return "foreign_key_violation"
	case ClassNotNullViolation:
		return "not_null_violation"
	case ClassCheckViolation:
		return "check_violation"
	case ClassConnection:
		return "connection"
	default:
		return "unknown"
	}
}

// Retryable reports whether the failed operation may succeed if attempted
// again.
func (c ErrorClass) Retryable() bool {
	return c == ClassConnection
}

// ErrorClassificator maps driver-specific errors to an [ErrorClass].
// There is one implementation per supported SQL dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClass
}

// writeError converts a driver error from an INSERT or UPDATE into a store
// sentinel. conflict is returned for unique violations so that each table
// can report its own uniqueness rule.
func (db *DB) writeError(err error, conflict error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	class := db.errorClassificator.Classify(err)
	if class.Retryable() {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	switch class {
	case ClassUniqueViolation:
		return conflict
	case ClassForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrInvalidReference, err)
	case ClassNotNullViolation, ClassCheckViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}
