// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/internal/validators"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// incompleteProjectsLimit caps the incomplete projects statistic.
const incompleteProjectsLimit = 20

type statisticsService struct {
	repository store.StatisticsRepository
	validator  validators.Validator
	logger     *logger.Logger
}

func NewStatisticsService(repository store.StatisticsRepository, logger *logger.Logger) StatisticsService {
	return &statisticsService{
		repository: repository,
		validator:  validators.NewInventoryValidator(),
		logger:     logger,
	}
}

func (s *statisticsService) ProjectCompletion(ctx context.Context, r models.DateRange) (models.ProjectCompletion, error) {
	if err := s.validateRange(ctx, r); err != nil {
		return models.ProjectCompletion{}, err
	}

	counts, err := s.repository.ProjectStatusCounts(ctx, r)
	if err != nil {
		return models.ProjectCompletion{}, err
	}

	res := models.ProjectCompletion{
		Completed:  counts[models.StatusCompleted],
		InProgress: counts[models.StatusInProgress],
		Pending:    counts[models.StatusPending],
	}
	for _, n := range counts {
		res.Total += n
	}
	if res.Total > 0 {
		res.CompletionRate = math.Round(float64(res.Completed)/float64(res.Total)*10000) / 100
	}
	return res, nil
}

func (s *statisticsService) Users(ctx context.Context, r models.DateRange) (models.UserStats, error) {
	if err := s.validateRange(ctx, r); err != nil {
		return models.UserStats{}, err
	}
	stats, err := s.repository.UserStats(ctx, r)
	if err != nil {
		return models.UserStats{}, err
	}
	if stats.ByRole == nil {
		stats.ByRole = map[string]int{}
	}
	return stats, nil
}

func (s *statisticsService) IncompleteProjects(ctx context.Context, r models.DateRange) (models.IncompleteProjects, error) {
	if err := s.validateRange(ctx, r); err != nil {
		return models.IncompleteProjects{}, err
	}

	records, err := s.repository.IncompleteProjects(ctx, r, incompleteProjectsLimit)
	if err != nil {
		return models.IncompleteProjects{}, err
	}

	res := models.IncompleteProjects{Projects: make([]models.Project, 0, len(records))}
	for _, rec := range records {
		p, err := projectFromRecord(rec)
		if err != nil {
			return models.IncompleteProjects{}, err
		}
		res.Projects = append(res.Projects, p)
	}
	return res, nil
}

func (s *statisticsService) ProductManager(ctx context.Context, r models.DateRange) (models.ProductManagerStats, error) {
	if err := s.validateRange(ctx, r); err != nil {
		return models.ProductManagerStats{}, err
	}
	managers, err := s.repository.ProductManagerStats(ctx, r)
	if err != nil {
		return models.ProductManagerStats{}, err
	}
	if managers == nil {
		managers = []models.ManagerProducts{}
	}
	return models.ProductManagerStats{Managers: managers}, nil
}

func (s *statisticsService) validateRange(ctx context.Context, r models.DateRange) error {
	return validationError(s.validator.Validate(ctx, r))
}

// projectFromRecord decodes a stored project. Projects without a status are
// pending.
func projectFromRecord(rec models.Record) (models.Project, error) {
	doc, err := rec.Document()
	if err != nil {
		return models.Project{}, fmt.Errorf("record %s has corrupted attributes: %w", rec.ID, err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return models.Project{}, err
	}
	var p models.Project
	if err = json.Unmarshal(raw, &p); err != nil {
		return models.Project{}, fmt.Errorf("record %s is not a project: %w", rec.ID, err)
	}
	if p.Status == "" {
		p.Status = models.StatusPending
	}
	return p, nil
}
