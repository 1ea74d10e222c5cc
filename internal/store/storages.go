// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
)

// Storages groups the server repositories so they can be passed to the
// service layer as one value.
type Storages struct {
	UserRepository         UserRepository
	RecordRepository       RecordRepository
	RefreshTokenRepository RefreshTokenRepository
	StatisticsRepository   StatisticsRepository

	db *DB
}

// NewStorages connects to PostgreSQL at dsn, applies pending migrations and
// builds every server repository on the shared connection pool.
func NewStorages(ctx context.Context, dsn string, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.MigrateServer(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:         NewUserRepository(db, log),
		RecordRepository:       NewRecordRepository(db, log),
		RefreshTokenRepository: NewRefreshTokenRepository(db, log),
		StatisticsRepository:   NewStatisticsRepository(db, log),
		db:                     db,
	}, nil
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
