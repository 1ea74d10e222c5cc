// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
)

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// count returns the number of rows of table matching where.
func (db *DB) count(ctx context.Context, table string, where sq.Sqlizer) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From(table).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	err = db.withRetry(ctx, func(ctx context.Context) error {
		return db.QueryRowContext(ctx, query, args...).Scan(&total)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("table", table).Msg("error counting rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return total, nil
}

// execAffecting runs a statement that must affect at least one row and
// returns notFound otherwise.
func (db *DB) execAffecting(ctx context.Context, notFound error, query string, args ...any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
