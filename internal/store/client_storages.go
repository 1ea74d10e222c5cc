// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/crypto"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// ClientStorages groups the client-side persistence.
type ClientStorages struct {
	// SessionStorage holds the authenticated session between runs. It is
	// either a [FileSessionStorage] or a [SQLiteSessionStorage].
	SessionStorage SessionStorage

	db *DB
}

// SessionStorage persists the client session. It matches the persister
// interface of the session store.
type SessionStorage interface {
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, sess models.Session) error
	Clear(ctx context.Context) error
}

// NewClientStorages initialises the client storage layer. A configured
// session file selects the JSON file store; otherwise the SQLite database at
// cfg.DSN is opened and migrated. A configured session key seals the stored
// tokens in either store.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new client storages...")

	var sealer crypto.Sealer
	if cfg.SessionKey != "" {
		var err error
		if sealer, err = crypto.NewPassphraseSealer(cfg.SessionKey); err != nil {
			return nil, fmt.Errorf("session sealer: %w", err)
		}
	}

	if cfg.SessionFile != "" {
		return &ClientStorages{SessionStorage: NewFileSessionStorage(cfg.SessionFile, sealer, log)}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.MigrateClient(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionStorage: NewSQLiteSessionStorage(db, sealer, log),
		db:             db,
	}, nil
}

// Close releases the SQLite connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
