// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

// Statistics reads the /statistics endpoints.
type Statistics struct {
	client *Client
}

func NewStatistics(c *Client) *Statistics {
	return &Statistics{client: c}
}

func (s *Statistics) ProjectCompletion(ctx context.Context, r models.DateRange) (models.ProjectCompletion, error) {
	return call[models.ProjectCompletion](ctx, s.client, statisticsRequest("project-completion", r))
}

func (s *Statistics) Users(ctx context.Context, r models.DateRange) (models.UserStats, error) {
	return call[models.UserStats](ctx, s.client, statisticsRequest("users", r))
}

func (s *Statistics) IncompleteProjects(ctx context.Context, r models.DateRange) (models.IncompleteProjects, error) {
	return call[models.IncompleteProjects](ctx, s.client, statisticsRequest("incomplete-projects", r))
}

func (s *Statistics) ProductManager(ctx context.Context, r models.DateRange) (models.ProductManagerStats, error) {
	return call[models.ProductManagerStats](ctx, s.client, statisticsRequest("product-manager", r))
}

func statisticsRequest(name string, r models.DateRange) Request {
	return NewRequest(http.MethodGet, "/statistics/"+name).WithQuery(dateQuery(r))
}
