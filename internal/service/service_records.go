// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/internal/validators"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type recordService struct {
	recordRepository store.RecordRepository
	ids              *utils.UUIDGenerator
	validator        validators.Validator
	logger           *logger.Logger
}

func NewRecordService(records store.RecordRepository, logger *logger.Logger) RecordService {
	return &recordService{
		recordRepository: records,
		ids:              utils.NewUUIDGenerator(),
		validator:        validators.NewInventoryValidator(),
		logger:           logger,
	}
}

func (s *recordService) List(ctx context.Context, kind models.RecordKind, params models.ListParams) (models.ListResult[map[string]any], error) {
	if !kind.Valid() {
		return models.ListResult[map[string]any]{}, ErrUnknownResource
	}

	records, total, err := s.recordRepository.ListRecords(ctx, kind, params)
	if err != nil {
		return models.ListResult[map[string]any]{}, err
	}

	docs := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		doc, err := rec.Document()
		if err != nil {
			return models.ListResult[map[string]any]{}, fmt.Errorf("record %s has corrupted attributes: %w", rec.ID, err)
		}
		docs = append(docs, doc)
	}
	return models.ListResult[map[string]any]{
		Items:      docs,
		Pagination: models.NewPagination(total, params.Page, params.Limit),
	}, nil
}

func (s *recordService) Get(ctx context.Context, kind models.RecordKind, id string) (map[string]any, error) {
	if !kind.Valid() {
		return nil, ErrUnknownResource
	}
	rec, err := s.recordRepository.GetRecord(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	return rec.Document()
}

func (s *recordService) Create(ctx context.Context, kind models.RecordKind, doc map[string]any) (map[string]any, error) {
	rec, err := s.fromDocument(ctx, kind, doc)
	if err != nil {
		return nil, err
	}
	rec.ID = s.ids.Generate()

	created, err := s.recordRepository.CreateRecord(ctx, rec)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug().Str("kind", string(kind)).Str("id", created.ID).Msg("record created")
	return created.Document()
}

func (s *recordService) Update(ctx context.Context, kind models.RecordKind, id string, doc map[string]any) (map[string]any, error) {
	if !kind.Valid() {
		return nil, ErrUnknownResource
	}
	existing, err := s.recordRepository.GetRecord(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	current, err := existing.Document()
	if err != nil {
		return nil, err
	}
	for k, v := range doc {
		current[k] = v
	}

	rec, err := s.fromDocument(ctx, kind, current)
	if err != nil {
		return nil, err
	}
	rec.ID = id

	updated, err := s.recordRepository.UpdateRecord(ctx, rec)
	if err != nil {
		return nil, err
	}
	return updated.Document()
}

func (s *recordService) Delete(ctx context.Context, kind models.RecordKind, id string) error {
	if !kind.Valid() {
		return ErrUnknownResource
	}
	return s.recordRepository.DeleteRecord(ctx, kind, id)
}

func (s *recordService) fromDocument(ctx context.Context, kind models.RecordKind, doc map[string]any) (models.Record, error) {
	if !kind.Valid() {
		return models.Record{}, ErrUnknownResource
	}
	rec, err := models.RecordFromDocument(kind, doc)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	rec.Name = strings.TrimSpace(rec.Name)
	if err = s.validator.Validate(ctx, rec); err != nil {
		return models.Record{}, validationError(err)
	}
	return rec, nil
}
