// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/cineview/cineview-server/internal/logger"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// ownedTable implements the operations shared by every table whose rows
// belong to a single user through a user_id column. Reads, updates and
// deletes always filter by both the row id and the owner, so a foreign row
// is indistinguishable from a missing one.
type ownedTable[T any] struct {
	db *DB

	// table is the SQL table name.
	table string
	// columns are selected, in order, for every row passed to scan.
	columns []string
	// recency is the timestamp column lists are ordered by, newest first.
	recency string
	// conflict is returned when an insert violates the (user_id, movie_id)
	// uniqueness rule.
	conflict error
	scan     func(row rowScanner) (T, error)
}

func (t *ownedTable[T]) selectRows() sq.SelectBuilder {
	return t.db.builder.Select(t.columns...).From(t.table)
}

func (t *ownedTable[T]) returning() string {
	return "RETURNING " + strings.Join(t.columns, ", ")
}

// ListByOwner returns all rows of ownerID, newest first with id as tie
// breaker. The result is never nil.
func (t *ownedTable[T]) ListByOwner(ctx context.Context, ownerID int64) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := t.selectRows().
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy(t.recency+" DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "ownedTable.ListByOwner").
			Str("table", t.table).
			Int64("user_id", ownerID).
			Msg("failed to execute query for listing owned rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return t.collect(ctx, rows)
}

// GetOwned returns row id when it belongs to ownerID, otherwise [ErrNotFound].
func (t *ownedTable[T]) GetOwned(ctx context.Context, ownerID, id int64) (T, error) {
	var zero T
	log := logger.FromContext(ctx)

	query, args, err := t.selectRows().
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := t.scan(t.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "ownedTable.GetOwned").
			Str("table", t.table).
			Int64("user_id", ownerID).
			Int64("id", id).
			Msg("failed to get owned row")
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// ExistsForOwner reports whether ownerID already has a row for movieID.
func (t *ownedTable[T]) ExistsForOwner(ctx context.Context, ownerID, movieID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := t.db.builder.
		Select("COUNT(*)").
		From(t.table).
		Where(sq.Eq{"movie_id": movieID, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = t.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "ownedTable.ExistsForOwner").
			Str("table", t.table).
			Int64("user_id", ownerID).
			Int64("movie_id", movieID).
			Msg("failed to check row existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// DeleteOwned removes row id when it belongs to ownerID, otherwise
// [ErrNotFound].
func (t *ownedTable[T]) DeleteOwned(ctx context.Context, ownerID, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := t.db.builder.
		Delete(t.table).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := t.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "ownedTable.DeleteOwned").
			Str("table", t.table).
			Int64("user_id", ownerID).
			Int64("id", id).
			Msg("failed to delete owned row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// insert writes one row and returns it as stored.
func (t *ownedTable[T]) insert(ctx context.Context, ownerID int64, values map[string]any) (T, error) {
	var zero T
	log := logger.FromContext(ctx)

	query, args, err := t.db.builder.
		Insert(t.table).
		SetMap(values).
		Suffix(t.returning()).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := t.scan(t.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "ownedTable.insert").
			Str("table", t.table).
			Int64("user_id", ownerID).
			Str("class", t.db.errorClassificator.Classify(err).String()).
			Msg("failed to insert owned row")
		return zero, t.db.writeError(err, t.conflict)
	}

	return item, nil
}

// update applies set to row id of ownerID and returns the row as stored.
func (t *ownedTable[T]) update(ctx context.Context, ownerID, id int64, set map[string]any) (T, error) {
	var zero T
	log := logger.FromContext(ctx)

	query, args, err := t.db.builder.
		Update(t.table).
		SetMap(set).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Suffix(t.returning()).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := t.scan(t.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).
				Str("func", "ownedTable.update").
				Str("table", t.table).
				Int64("user_id", ownerID).
				Int64("id", id).
				Msg("failed to update owned row")
		}
		return zero, t.db.writeError(err, t.conflict)
	}

	return item, nil
}

func (t *ownedTable[T]) collect(ctx context.Context, rows *sql.Rows) ([]T, error) {
	log := logger.FromContext(ctx)

	items := make([]T, 0)
	for rows.Next() {
		item, err := t.scan(rows)
		if err != nil {
			log.Err(err).
				Str("func", "ownedTable.collect").
				Str("table", t.table).
				Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "ownedTable.collect").
			Str("table", t.table).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
