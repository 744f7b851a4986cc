// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cineview/cineview-server/internal/logger"
	"github.com/cineview/cineview-server/models"
)

const tokensTable = "personal_access_tokens"

var tokenColumns = []string{"id", "user_id", "name", "token_hash", "created_at", "last_used_at", "expires_at"}

// tokenRepository is the SQL implementation of [TokenRepository].
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

func (r *tokenRepository) CreateToken(ctx context.Context, token models.Token) (models.Token, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(tokensTable).
		SetMap(map[string]any{
			"user_id":    token.UserID,
			"name":       token.Name,
			"token_hash": token.TokenHash,
			"created_at": token.CreatedAt,
			"expires_at": token.ExpiresAt,
		}).
		Suffix("RETURNING " + strings.Join(tokenColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanToken(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*tokenRepository.CreateToken").
			Int64("user_id", token.UserID).
			Msg("error creating token")
		return models.Token{}, r.db.writeError(err, ErrConflict)
	}

	return created, nil
}

// FindTokenByHash returns the token whose digest equals tokenHash or
// [ErrNotFound]. Expiry is left to the caller.
func (r *tokenRepository) FindTokenByHash(ctx context.Context, tokenHash string) (models.Token, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(tokenColumns...).
		From(tokensTable).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	token, err := scanToken(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Token{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.FindTokenByHash").Msg("error: scanning error")
		return models.Token{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}

func (r *tokenRepository) TouchToken(ctx context.Context, tokenID int64, usedAt time.Time) error {
	query, args, err := r.db.builder.
		Update(tokensTable).
		Set("last_used_at", usedAt).
		Where(sq.Eq{"id": tokenID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*tokenRepository.TouchToken", tokenID, query, args)
}

func (r *tokenRepository) DeleteToken(ctx context.Context, tokenID int64) error {
	query, args, err := r.db.builder.
		Delete(tokensTable).
		Where(sq.Eq{"id": tokenID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*tokenRepository.DeleteToken", tokenID, query, args)
}

func (r *tokenRepository) exec(ctx context.Context, fn string, tokenID int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Int64("token_id", tokenID).Msg("error executing token statement")
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

func scanToken(row rowScanner) (models.Token, error) {
	var t models.Token
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.TokenHash, &t.CreatedAt, &t.LastUsedAt, &t.ExpiresAt)
	return t, err
}
