// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/cache"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/query"
)

// ResourceOptions are the cache and synchronizer settings shared by the
// resource services.
type ResourceOptions struct {
	ListTTL        time.Duration
	SearchDebounce time.Duration
	// Dependents are cache prefixes invalidated together with the
	// resource's own lists, such as the statistics.
	Dependents []string
}

type clientResourceService[T any] struct {
	name   string
	api    adapter.ResourceAPI[T]
	cache  *cache.Cache
	opts   ResourceOptions
	logger *logger.Logger
}

// NewClientResourceService returns the service of the resource served at
// name, for example "projects".
func NewClientResourceService[T any](name string, api adapter.ResourceAPI[T], c *cache.Cache, opts ResourceOptions, log *logger.Logger) ClientResourceService[T] {
	return newClientResourceService[T](name, api, c, opts, log)
}

func newClientResourceService[T any](name string, api adapter.ResourceAPI[T], c *cache.Cache, opts ResourceOptions, log *logger.Logger) *clientResourceService[T] {
	return &clientResourceService[T]{name: name, api: api, cache: c, opts: opts, logger: log}
}

func (s *clientResourceService[T]) Name() string {
	return s.name
}

func (s *clientResourceService[T]) Query(location query.Location) ListQuery[T] {
	sync := query.NewSynchronizer(location,
		query.WithDebounce(s.opts.SearchDebounce),
		query.WithLogger(s.logger),
	)
	return newListQuery[T](s.name, s.api.List, s.cache, s.opts.ListTTL, sync)
}

func (s *clientResourceService[T]) Get(ctx context.Context, id string) (T, error) {
	item, err := s.api.Get(ctx, id)
	return item, mapAdapterError(err)
}

func (s *clientResourceService[T]) Create(ctx context.Context, item T) (T, error) {
	created, err := s.api.Create(ctx, item)
	if err != nil {
		return created, mapAdapterError(err)
	}
	s.invalidate()
	return created, nil
}

func (s *clientResourceService[T]) Update(ctx context.Context, id string, item T) (T, error) {
	updated, err := s.api.Update(ctx, id, item)
	if err != nil {
		return updated, mapAdapterError(err)
	}
	s.invalidate()
	return updated, nil
}

func (s *clientResourceService[T]) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return mapAdapterError(err)
	}
	s.invalidate()
	return nil
}

func (s *clientResourceService[T]) invalidate() {
	n := s.cache.Invalidate(s.name)
	for _, prefix := range s.opts.Dependents {
		n += s.cache.Invalidate(prefix)
	}
	s.logger.Debug().Str("resource", s.name).Int("entries", n).Msg("cached lists invalidated")
}
