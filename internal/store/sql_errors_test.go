// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/cineview/cineview-server/internal/config"
	"github.com/cineview/cineview-server/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClass
	}{
		{"nil", nil, ClassUnknown},
		{"plain error", errors.New("x"), ClassUnknown},
		{"unique", pgError(pgerrcode.UniqueViolation), ClassUniqueViolation},
		{"wrapped unique", fmt.Errorf("wrap: %w", pgError(pgerrcode.UniqueViolation)), ClassUniqueViolation},
		{"foreign key", pgError(pgerrcode.ForeignKeyViolation), ClassForeignKeyViolation},
		{"not null", pgError(pgerrcode.NotNullViolation), ClassNotNullViolation},
		{"check", pgError(pgerrcode.CheckViolation), ClassCheckViolation},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), ClassConnection},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), ClassConnection},
		{"syntax", pgError(pgerrcode.SyntaxError), ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClass
	}{
		{"plain error", errors.New("x"), ClassUnknown},
		{"unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, ClassUniqueViolation},
		{"primary key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, ClassUniqueViolation},
		{"foreign key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, ClassForeignKeyViolation},
		{"not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, ClassNotNullViolation},
		{"check", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}, ClassCheckViolation},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, ClassConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorClass_StringAndRetryable(t *testing.T) {
	assert.Equal(t, "unique_violation", ClassUniqueViolation.String())
	assert.Equal(t, "unknown", ErrorClass(99).String())
	assert.True(t, ClassConnection.Retryable())
	assert.False(t, ClassUniqueViolation.Retryable())
}

func TestDB_WriteError(t *testing.T) {
	db := newDB(nil, config.DriverPostgres, logger.Nop())
	conflict := errors.New("custom conflict")

	assert.ErrorIs(t, db.writeError(sql.ErrNoRows, conflict), ErrNotFound)
	assert.ErrorIs(t, db.writeError(pgError(pgerrcode.UniqueViolation), conflict), conflict)
	assert.ErrorIs(t, db.writeError(pgError(pgerrcode.ForeignKeyViolation), conflict), ErrInvalidReference)
	assert.ErrorIs(t, db.writeError(pgError(pgerrcode.CheckViolation), conflict), ErrConstraintViolation)
	assert.ErrorIs(t, db.writeError(pgError(pgerrcode.ConnectionFailure), conflict), ErrStorageUnavailable)
	assert.ErrorIs(t, db.writeError(errors.New("boom"), conflict), ErrExecutingStatement)
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(t.Context(), config.DB{Driver: "mysql"}, logger.Nop())
	assert.Error(t, err)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "a.db?_foreign_keys=on&_busy_timeout=5000", sqliteDSN("a.db"))
	assert.Equal(t, "a.db?mode=rwc&_foreign_keys=on&_busy_timeout=5000", sqliteDSN("a.db?mode=rwc"))
	assert.Equal(t, "a.db?_fk=1", sqliteDSN("a.db?_fk=1"))
}
