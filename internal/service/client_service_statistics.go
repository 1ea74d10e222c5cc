// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/cache"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// StatisticsPrefix is the cache key prefix of every statistics entry.
const StatisticsPrefix = "statistics/"

type clientStatisticsService struct {
	api   adapter.StatisticsAPI
	cache *cache.Cache
	ttl   time.Duration
}

func NewClientStatisticsService(api adapter.StatisticsAPI, c *cache.Cache, ttl time.Duration) ClientStatisticsService {
	return &clientStatisticsService{api: api, cache: c, ttl: ttl}
}

func (s *clientStatisticsService) ProjectCompletion(ctx context.Context, r models.DateRange) (cache.Entry[models.ProjectCompletion], error) {
	return statistic(ctx, s, "project-completion", r, s.api.ProjectCompletion)
}

func (s *clientStatisticsService) Users(ctx context.Context, r models.DateRange) (cache.Entry[models.UserStats], error) {
	return statistic(ctx, s, "users", r, s.api.Users)
}

func (s *clientStatisticsService) IncompleteProjects(ctx context.Context, r models.DateRange) (cache.Entry[models.IncompleteProjects], error) {
	return statistic(ctx, s, "incomplete-projects", r, s.api.IncompleteProjects)
}

func (s *clientStatisticsService) ProductManager(ctx context.Context, r models.DateRange) (cache.Entry[models.ProductManagerStats], error) {
	return statistic(ctx, s, "product-manager", r, s.api.ProductManager)
}

func (s *clientStatisticsService) Invalidate() {
	s.cache.Invalidate(StatisticsPrefix)
}

func statistic[T any](ctx context.Context, s *clientStatisticsService, name string, r models.DateRange,
	fetch func(context.Context, models.DateRange) (T, error)) (cache.Entry[T], error) {
	key := cache.Key(StatisticsPrefix+name, r.Key())
	return cache.Get(ctx, s.cache, key, s.ttl, func(ctx context.Context) (T, error) {
		v, err := fetch(ctx, r)
		return v, mapAdapterError(err)
	})
}
