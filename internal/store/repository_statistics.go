// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type statisticsRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewStatisticsRepository(db *DB, logger *logger.Logger) StatisticsRepository {
	logger.Debug().Msg("creating statistics repository")
	return &statisticsRepository{
		db:     db,
		logger: logger,
	}
}

const projectStatusExpr = "COALESCE(attributes->>'status', 'pending')"

// ProjectStatusCounts counts projects created in r by status. Projects
// without a status count as pending.
func (r *statisticsRepository) ProjectStatusCounts(ctx context.Context, dr models.DateRange) (map[models.ProjectStatus]int, error) {
	query, args, err := psql.Select(projectStatusExpr, "COUNT(*)").From(tableRecords).
		Where(sq.Eq{"kind": string(models.KindProject)}).
		Where(dateRange("created_at", dr)).
		GroupBy(projectStatusExpr).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	counts := map[models.ProjectStatus]int{}
	err = r.query(ctx, query, args, func(rows *sql.Rows) error {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return err
		}
		counts[models.ProjectStatus(status)] += n
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error counting projects")
		return nil, err
	}
	return counts, nil
}

// UserStats counts users created in r by role and activity.
func (r *statisticsRepository) UserStats(ctx context.Context, dr models.DateRange) (models.UserStats, error) {
	query, args, err := psql.Select("role", "is_active", "COUNT(*)").From(tableUsers).
		Where(dateRange("created_at", dr)).
		GroupBy("role", "is_active").
		ToSql()
	if err != nil {
		return models.UserStats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	stats := models.UserStats{ByRole: map[string]int{}}
	err = r.query(ctx, query, args, func(rows *sql.Rows) error {
		var role string
		var active bool
		var n int
		if err := rows.Scan(&role, &active, &n); err != nil {
			return err
		}
		stats.Total += n
		stats.ByRole[role] += n
		if active {
			stats.Active += n
		} else {
			stats.Inactive += n
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error counting users")
		return models.UserStats{}, err
	}
	return stats, nil
}

// IncompleteProjects returns up to limit projects created in r that are not
// completed, newest first.
func (r *statisticsRepository) IncompleteProjects(ctx context.Context, dr models.DateRange, limit int) ([]models.Record, error) {
	query, args, err := psql.Select(recordColumns...).From(tableRecords).
		Where(sq.Eq{"kind": string(models.KindProject)}).
		Where(sq.NotEq{projectStatusExpr: string(models.StatusCompleted)}).
		Where(dateRange("created_at", dr)).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var projects []models.Record
	err = r.query(ctx, query, args, func(rows *sql.Rows) error {
		rec, err := scanRecord(rows)
		if err != nil {
			return err
		}
		projects = append(projects, rec)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing incomplete projects")
		return nil, err
	}
	return projects, nil
}

// ProductManagerStats counts products created in r per managing user.
func (r *statisticsRepository) ProductManagerStats(ctx context.Context, dr models.DateRange) ([]models.ManagerProducts, error) {
	query, args, err := psql.Select(
		"u.id", "u.name", "COUNT(p.id)",
		"COALESCE(SUM((p.attributes->>'quantity')::numeric), 0)::bigint",
	).
		From(tableRecords+" p").
		Join(tableUsers+" u ON u.id::text = p.attributes->>'managerId'").
		Where(sq.Eq{"p.kind": string(models.KindProduct)}).
		Where(dateRange("p.created_at", dr)).
		GroupBy("u.id", "u.name").
		OrderBy("COUNT(p.id) DESC", "u.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var managers []models.ManagerProducts
	err = r.query(ctx, query, args, func(rows *sql.Rows) error {
		var m models.ManagerProducts
		if err := rows.Scan(&m.ManagerID, &m.ManagerName, &m.Products, &m.Quantity); err != nil {
			return err
		}
		managers = append(managers, m)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error counting products per manager")
		return nil, err
	}
	return managers, nil
}

// query runs a read statement and calls scan for every row. Only opening
// the result set is retried.
func (r *statisticsRepository) query(ctx context.Context, query string, args []any, scan func(rows *sql.Rows) error) error {
	var rows *sql.Rows
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		var err error
		rows, err = r.db.QueryContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
