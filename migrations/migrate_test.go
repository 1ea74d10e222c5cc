// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrateServer_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // no expectations: goose's first query fails

	err = MigrateServer(db)
	if err == nil {
		t.Fatal("expected error from MigrateServer, got nil")
	}
	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrateClient_NilDB(t *testing.T) {
	var db *sql.DB

	err := MigrateClient(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}
	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	tests := []struct {
		name string
		fsys fs.FS
		glob string
		want int
	}{
		{"server", serverMigrations, "server/*.sql", 3},
		{"client", clientMigrations, "client/*.sql", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := fs.Glob(tt.fsys, tt.glob)
			if err != nil {
				t.Fatalf("glob: %v", err)
			}
			if len(files) != tt.want {
				t.Errorf("expected %d migrations, got %d", tt.want, len(files))
			}
			for _, f := range files {
				body, _ := fs.ReadFile(tt.fsys, f)
				if !strings.Contains(string(body), "-- +goose Up") {
					t.Errorf("%s has no goose Up section", f)
				}
			}
		})
	}
}
