// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/mock"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRecordService(t *testing.T) (RecordService, *mock.MockRecordRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	records := mock.NewMockRecordRepository(ctrl)
	return NewRecordService(records, logger.Nop()), records
}

var testCreatedAt = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

func TestRecordService_List(t *testing.T) {
	svc, records := newTestRecordService(t)
	params := models.ListParams{Page: 1, Limit: 10, Search: "roof"}

	records.EXPECT().ListRecords(gomock.Any(), models.KindProject, params).Return([]models.Record{{
		ID: "p1", Kind: models.KindProject, Name: "Roof",
		Attributes: json.RawMessage(`{"status":"pending","budget":100}`),
		CreatedAt:  testCreatedAt, UpdatedAt: testCreatedAt,
	}}, 1, nil)

	res, err := svc.List(context.Background(), models.KindProject, params)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Roof", res.Items[0]["name"])
	assert.Equal(t, "pending", res.Items[0]["status"])
	assert.Equal(t, float64(100), res.Items[0]["budget"])
	assert.Equal(t, 1, res.Pagination.Pages)
}

func TestRecordService_UnknownKind(t *testing.T) {
	svc, _ := newTestRecordService(t)
	ctx := context.Background()
	kind := models.RecordKind("planets")

	_, err := svc.List(ctx, kind, models.ListParams{})
	assert.ErrorIs(t, err, ErrUnknownResource)
	_, err = svc.Get(ctx, kind, "x")
	assert.ErrorIs(t, err, ErrUnknownResource)
	_, err = svc.Create(ctx, kind, map[string]any{"name": "x"})
	assert.ErrorIs(t, err, ErrUnknownResource)
	_, err = svc.Update(ctx, kind, "x", map[string]any{"name": "x"})
	assert.ErrorIs(t, err, ErrUnknownResource)
	assert.ErrorIs(t, svc.Delete(ctx, kind, "x"), ErrUnknownResource)
}

func TestRecordService_Create(t *testing.T) {
	svc, records := newTestRecordService(t)

	records.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec models.Record) (models.Record, error) {
		assert.NotEmpty(t, rec.ID)
		assert.Equal(t, "Acme", rec.Name)
		assert.JSONEq(t, `{"email":"hi@acme.io"}`, string(rec.Attributes))
		rec.CreatedAt, rec.UpdatedAt = testCreatedAt, testCreatedAt
		return rec, nil
	})

	doc, err := svc.Create(context.Background(), models.KindClient, map[string]any{
		"id": "client-supplied", "name": " Acme ", "email": "hi@acme.io",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", doc["name"])
	assert.NotEqual(t, "client-supplied", doc["id"])
}

func TestRecordService_Create_Invalid(t *testing.T) {
	svc, _ := newTestRecordService(t)

	_, err := svc.Create(context.Background(), models.KindClient, map[string]any{"email": "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Create(context.Background(), models.KindProject, map[string]any{"name": "p", "status": "done"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRecordService_UpdateMerges(t *testing.T) {
	svc, records := newTestRecordService(t)
	ctx := context.Background()

	records.EXPECT().GetRecord(ctx, models.KindProject, "p1").Return(models.Record{
		ID: "p1", Kind: models.KindProject, Name: "Roof",
		Attributes: json.RawMessage(`{"status":"pending","budget":100}`),
	}, nil)
	records.EXPECT().UpdateRecord(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, rec models.Record) (models.Record, error) {
		assert.Equal(t, "p1", rec.ID)
		assert.Equal(t, "Roof", rec.Name)
		assert.JSONEq(t, `{"status":"completed","budget":100}`, string(rec.Attributes))
		return rec, nil
	})

	doc, err := svc.Update(ctx, models.KindProject, "p1", map[string]any{"status": "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", doc["status"])
}

func TestRecordService_GetNotFound(t *testing.T) {
	svc, records := newTestRecordService(t)
	records.EXPECT().GetRecord(gomock.Any(), models.KindTask, "t1").Return(models.Record{}, store.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), models.KindTask, "t1")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestRecordService_Delete(t *testing.T) {
	svc, records := newTestRecordService(t)
	records.EXPECT().DeleteRecord(gomock.Any(), models.KindTechnician, "x").Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), models.KindTechnician, "x"))
}
