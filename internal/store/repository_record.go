// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// recordRepository is the PostgreSQL implementation of [RecordRepository].
// All resource kinds share the records table.
type recordRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
	}
}

func (r *recordRepository) CreateRecord(ctx context.Context, record models.Record) (models.Record, error) {
	query, args, err := psql.Insert(tableRecords).
		Columns("id", "kind", "name", "attributes").
		Values(record.ID, string(record.Kind), record.Name, attributesValue(record.Attributes)).
		Suffix("RETURNING " + joinColumns(recordColumns)).
		ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanRecord(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("kind", string(record.Kind)).Msg("error creating record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return created, nil
}

func (r *recordRepository) GetRecord(ctx context.Context, kind models.RecordKind, id string) (models.Record, error) {
	query, args, err := psql.Select(recordColumns...).From(tableRecords).
		Where(sq.Eq{"kind": string(kind), "id": id}).
		ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Record
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		found, scanErr = scanRecord(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("kind", string(kind)).Msg("error getting record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return found, nil
}

// ListRecords returns one page of records of kind and the total number of
// matches.
func (r *recordRepository) ListRecords(ctx context.Context, kind models.RecordKind, params models.ListParams) ([]models.Record, int, error) {
	where := recordFilters(kind, params)

	total, err := r.db.count(ctx, tableRecords, where)
	if err != nil {
		return nil, 0, err
	}

	query, args, err := psql.Select(recordColumns...).From(tableRecords).Where(where).
		OrderBy(orderBy(recordSortColumns, true, params.Sort, params.Order)).
		Limit(uint64(params.Limit)).
		Offset(uint64(params.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	records, err := r.queryRecords(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("kind", string(kind)).Msg("error listing records")
		return nil, 0, err
	}
	return records, total, nil
}

// UpdateRecord replaces name and attributes of an existing record.
func (r *recordRepository) UpdateRecord(ctx context.Context, record models.Record) (models.Record, error) {
	query, args, err := psql.Update(tableRecords).
		Set("name", record.Name).
		Set("attributes", attributesValue(record.Attributes)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"kind": string(record.Kind), "id": record.ID}).
		Suffix("RETURNING " + joinColumns(recordColumns)).
		ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanRecord(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("kind", string(record.Kind)).Msg("error updating record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return updated, nil
}

func (r *recordRepository) DeleteRecord(ctx context.Context, kind models.RecordKind, id string) error {
	query, args, err := psql.Delete(tableRecords).
		Where(sq.Eq{"kind": string(kind), "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.execAffecting(ctx, ErrRecordNotFound, query, args...)
}

func (r *recordRepository) queryRecords(ctx context.Context, query string, args ...any) ([]models.Record, error) {
	var records []models.Record
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		records = records[:0]
		for rows.Next() {
			rec, err := scanRecord(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			records = append(records, rec)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return records, nil
}

func attributesValue(raw []byte) string {
	if len(raw) == 0 {
		return "{}"
	}
	return string(raw)
}

func scanRecord(row rowScanner) (models.Record, error) {
	var rec models.Record
	var kind string
	var attrs []byte
	if err := row.Scan(&rec.ID, &kind, &rec.Name, &attrs, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return models.Record{}, err
	}
	rec.Kind = models.RecordKind(kind)
	rec.Attributes = attrs
	return rec, nil
}
