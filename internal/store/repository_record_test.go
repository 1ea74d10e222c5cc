// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecordRepo(t *testing.T) (*recordRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &recordRepository{db: db, logger: logger.Nop()}, mock
}

func recordRows(records ...models.Record) *sqlmock.Rows {
	rows := sqlmock.NewRows(recordColumns)
	for _, r := range records {
		rows.AddRow(r.ID, string(r.Kind), r.Name, []byte(r.Attributes), r.CreatedAt, r.UpdatedAt)
	}
	return rows
}

func testProject() models.Record {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return models.Record{
		ID:         "p1",
		Kind:       models.KindProject,
		Name:       "Roof repair",
		Attributes: json.RawMessage(`{"status":"pending","budget":1200}`),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestCreateRecord(t *testing.T) {
	repo, mock := newTestRecordRepo(t)
	rec := testProject()

	mock.ExpectQuery(`INSERT INTO records \(id,kind,name,attributes\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING`).
		WithArgs(rec.ID, "projects", rec.Name, string(rec.Attributes)).
		WillReturnRows(recordRows(rec))

	created, err := repo.CreateRecord(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, created.ID)
	assert.Equal(t, models.KindProject, created.Kind)
	assert.JSONEq(t, string(rec.Attributes), string(created.Attributes))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRecord_EmptyAttributes(t *testing.T) {
	repo, mock := newTestRecordRepo(t)
	rec := testProject()
	rec.Attributes = nil

	mock.ExpectQuery("INSERT INTO records").
		WithArgs(rec.ID, "projects", rec.Name, "{}").
		WillReturnRows(recordRows(testProject()))

	_, err := repo.CreateRecord(context.Background(), rec)
	require.NoError(t, err)
}

func TestGetRecord(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestRecordRepo(t)
		rec := testProject()

		mock.ExpectQuery(`SELECT .+ FROM records WHERE id = \$1 AND kind = \$2`).
			WithArgs("p1", "projects").
			WillReturnRows(recordRows(rec))

		got, err := repo.GetRecord(context.Background(), models.KindProject, "p1")
		require.NoError(t, err)
		assert.Equal(t, "Roof repair", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestRecordRepo(t)
		mock.ExpectQuery("SELECT .+ FROM records").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetRecord(context.Background(), models.KindProject, "missing")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestListRecords_AttributeFiltersAndSort(t *testing.T) {
	repo, mock := newTestRecordRepo(t)

	params := models.ListParams{
		Page:    1,
		Limit:   5,
		Search:  "roof",
		Sort:    "budget",
		Order:   "desc",
		Filters: map[string]string{"status": "pending", "clientId": "c1", "bad key": "x"},
	}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM records WHERE \(kind = \$1 AND name ILIKE \$2 AND attributes->>\$3 = \$4 AND attributes->>\$5 = \$6\)`).
		WithArgs("projects", "%roof%", "clientId", "c1", "status", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`ORDER BY \(attributes->>'budget'\)::numeric DESC NULLS LAST, id DESC LIMIT 5 OFFSET 0`).
		WithArgs("projects", "%roof%", "clientId", "c1", "status", "pending").
		WillReturnRows(recordRows(testProject()))

	records, total, err := repo.ListRecords(context.Background(), models.KindProject, params)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, records, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecords_QueryError(t *testing.T) {
	repo, mock := newTestRecordRepo(t)

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("SELECT .+ FROM records").WillReturnError(errors.New("connection reset"))

	_, _, err := repo.ListRecords(context.Background(), models.KindClient, models.ListParams{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestUpdateRecord(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newTestRecordRepo(t)
		rec := testProject()

		mock.ExpectQuery(`UPDATE records SET name = \$1, attributes = \$2, updated_at = \$3 WHERE id = \$4 AND kind = \$5`).
			WithArgs(rec.Name, string(rec.Attributes), sqlmock.AnyArg(), rec.ID, "projects").
			WillReturnRows(recordRows(rec))

		_, err := repo.UpdateRecord(context.Background(), rec)
		require.NoError(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestRecordRepo(t)
		mock.ExpectQuery("UPDATE records").WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateRecord(context.Background(), testProject())
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestDeleteRecord(t *testing.T) {
	repo, mock := newTestRecordRepo(t)

	mock.ExpectExec(`DELETE FROM records WHERE id = \$1 AND kind = \$2`).
		WithArgs("t1", "tasks").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteRecord(context.Background(), models.KindTask, "t1")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
