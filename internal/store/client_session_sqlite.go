// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/crypto"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// SessionStorageKey is the fixed key of the persisted client session.
const SessionStorageKey = "auth-storage"

const (
	selectKV = `SELECT value FROM kv_store WHERE key = ?;`
	upsertKV = `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`
	deleteKV = `DELETE FROM kv_store WHERE key = ?;`
)

// SQLiteSessionStorage keeps the client session as one JSON row of the
// kv_store table.
type SQLiteSessionStorage struct {
	db     *DB
	codec  sessionCodec
	logger *logger.Logger
}

// NewSQLiteSessionStorage creates the storage. A nil sealer stores the
// tokens in plain text.
func NewSQLiteSessionStorage(db *DB, sealer crypto.Sealer, log *logger.Logger) *SQLiteSessionStorage {
	return &SQLiteSessionStorage{db: db, codec: sessionCodec{sealer: sealer}, logger: log}
}

func (s *SQLiteSessionStorage) Load(ctx context.Context) (models.Session, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, selectKV, SessionStorageKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, nil
	}
	if err != nil {
		s.logger.Err(err).Msg("error loading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var stored persistedSession
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.Err(err).Msg("stored session is not valid JSON")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCorrupted, err)
	}
	return s.codec.decode(stored)
}

func (s *SQLiteSessionStorage) Save(ctx context.Context, sess models.Session) error {
	stored, err := s.codec.encode(sess)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, upsertKV, SessionStorageKey, string(raw)); err != nil {
		s.logger.Err(err).Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (s *SQLiteSessionStorage) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, deleteKV, SessionStorageKey); err != nil {
		s.logger.Err(err).Msg("error clearing session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
