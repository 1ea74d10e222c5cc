// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/migrations"
	"github.com/sethvargo/go-retry"
)

// DB is a *sql.DB together with the error classifier of its driver.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	backoff            func() retry.Backoff
}

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// MigrateServer applies the API server schema.
func (db *DB) MigrateServer() error {
	return migrations.MigrateServer(db.DB)
}

// MigrateClient applies the client schema.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

// withRetry runs fn again while it fails with an error the classifier marks
// as retryable. Without a classifier fn runs once.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	if db.errorClassificator == nil || db.backoff == nil {
		return fn(ctx)
	}

	return retry.Do(ctx, db.backoff(), func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Msg("retrying database statement")
			return retry.RetryableError(err)
		}
		return err
	})
}
