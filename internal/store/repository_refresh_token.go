// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type refreshTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewRefreshTokenRepository(db *DB, logger *logger.Logger) RefreshTokenRepository {
	logger.Debug().Msg("creating refresh token repository")
	return &refreshTokenRepository{
		db:     db,
		logger: logger,
	}
}

func (r *refreshTokenRepository) SaveRefreshToken(ctx context.Context, token models.RefreshToken) error {
	query, args, err := psql.Insert(tableRefreshTokens).
		Columns("id", "user_id", "token_hash", "expires_at").
		Values(token.ID, token.UserID, token.TokenHash, token.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Msg("error saving refresh token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *refreshTokenRepository) ConsumeRefreshToken(ctx context.Context, tokenHash string) (models.RefreshToken, error) {
	query, args, err := psql.Delete(tableRefreshTokens).
		Where(sq.Eq{"token_hash": tokenHash}).
		Suffix("RETURNING " + joinColumns(refreshTokenColumns)).
		ToSql()
	if err != nil {
		return models.RefreshToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var t models.RefreshToken
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RefreshToken{}, ErrRefreshTokenNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error consuming refresh token")
		return models.RefreshToken{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return t, nil
}

func (r *refreshTokenRepository) DeleteUserRefreshTokens(ctx context.Context, userID string) error {
	query, args, err := psql.Delete(tableRefreshTokens).Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Msg("error deleting refresh tokens")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
