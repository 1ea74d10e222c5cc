// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/cache"
	"github.com/MKhiriev/go-inventory-keeper/internal/query"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// lister is the single endpoint a list query reads.
type lister[T any] func(ctx context.Context, params models.ListParams) (models.ListResult[T], error)

type listQuery[T any] struct {
	resource string
	list     lister[T]
	cache    *cache.Cache
	ttl      time.Duration
	sync     *query.Synchronizer
}

func newListQuery[T any](resource string, list lister[T], c *cache.Cache, ttl time.Duration, sync *query.Synchronizer) *listQuery[T] {
	return &listQuery[T]{resource: resource, list: list, cache: c, ttl: ttl, sync: sync}
}

func (q *listQuery[T]) Result(ctx context.Context) (ListSnapshot[T], error) {
	state := q.sync.State()
	e, err := cache.Get(ctx, q.cache, q.key(state), q.ttl, q.fetcher(state))
	return ListSnapshot[T]{State: state, Entry: e}, err
}

func (q *listQuery[T]) Refetch(ctx context.Context) (ListSnapshot[T], error) {
	state := q.sync.State()
	e, err := cache.Refetch(ctx, q.cache, q.key(state), q.ttl, q.fetcher(state))
	return ListSnapshot[T]{State: state, Entry: e}, err
}

func (q *listQuery[T]) Synchronizer() *query.Synchronizer {
	return q.sync
}

func (q *listQuery[T]) Close() {
	q.sync.Close()
}

func (q *listQuery[T]) key(state query.State) string {
	return cache.Key(q.resource, state.Key())
}

func (q *listQuery[T]) fetcher(state query.State) cache.Fetcher[models.ListResult[T]] {
	params := state.Params()
	return func(ctx context.Context) (models.ListResult[T], error) {
		res, err := q.list(ctx, params)
		return res, mapAdapterError(err)
	}
}
