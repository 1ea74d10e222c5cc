// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-inventory-keeper/internal/crypto"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// FileSessionStorage keeps the client session in a JSON file holding a
// single {"auth-storage": {...}} record.
type FileSessionStorage struct {
	path   string
	codec  sessionCodec
	mu     sync.Mutex
	logger *logger.Logger
}

// NewFileSessionStorage creates the storage. A nil sealer stores the tokens
// in plain text.
func NewFileSessionStorage(path string, sealer crypto.Sealer, log *logger.Logger) *FileSessionStorage {
	return &FileSessionStorage{path: path, codec: sessionCodec{sealer: sealer}, logger: log}
}

func (f *FileSessionStorage) Load(_ context.Context) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("read session file: %w", err)
	}

	var doc map[string]persistedSession
	if err := json.Unmarshal(data, &doc); err != nil {
		f.logger.Err(err).Str("path", f.path).Msg("session file is not valid JSON")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCorrupted, err)
	}
	return f.codec.decode(doc[SessionStorageKey])
}

func (f *FileSessionStorage) Save(_ context.Context, sess models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, err := f.codec.encode(sess)
	if err != nil {
		return err
	}
	return f.persistLocked(map[string]persistedSession{SessionStorageKey: stored})
}

func (f *FileSessionStorage) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// persistLocked replaces the file through a temp file and a rename.
// f.mu must be held.
func (f *FileSessionStorage) persistLocked(doc map[string]persistedSession) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}
