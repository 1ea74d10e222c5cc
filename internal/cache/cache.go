// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/singleflight"
)

// DefaultRetryDelay is the pause before the single retry of a failed fetch.
const DefaultRetryDelay = time.Second

// Fetcher loads the value for one key.
type Fetcher[T any] func(ctx context.Context) (T, error)

// Entry is a value returned from the cache.
type Entry[T any] struct {
	Value     T
	FetchedAt time.Time
	// Stale is set when the value is past its TTL or was invalidated. Stale
	// entries are only returned together with a fetch error.
	Stale bool
}

type entry struct {
	value     any
	fetchedAt time.Time
	staleAt   time.Time
}

// Cache is safe for concurrent use. The zero value is not usable; call New.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]entry
	generation uint64

	flight    singleflight.Group
	now       func() time.Time
	delay     time.Duration
	retryable func(error) bool
	logger    *logger.Logger
}

// Option configures a [Cache].
type Option func(*Cache)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithRetryDelay sets the pause before the retry of a failed fetch.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithRetryable decides which fetch errors are worth the retry. By default
// every error except context cancellation is.
func WithRetryable(fn func(error) bool) Option {
	return func(c *Cache) { c.retryable = fn }
}

func WithLogger(l *logger.Logger) Option {
	return func(c *Cache) { c.logger = l }
}

// New returns an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries:   map[string]entry{},
		now:       time.Now,
		delay:     DefaultRetryDelay,
		retryable: defaultRetryable,
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value stored under key when it is fresh and calls fetch
// otherwise.
func Get[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, fetch Fetcher[T]) (Entry[T], error) {
	if e, ok := c.lookup(key); ok && !e.stale(c.now()) {
		if v, ok := e.value.(T); ok {
			c.logger.Debug().Str("key", key).Msg("cache hit")
			return Entry[T]{Value: v, FetchedAt: e.fetchedAt}, nil
		}
	}
	return load(ctx, c, key, ttl, fetch)
}

// Refetch calls fetch whether or not the stored value is fresh.
func Refetch[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, fetch Fetcher[T]) (Entry[T], error) {
	return load(ctx, c, key, ttl, fetch)
}

func load[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, fetch Fetcher[T]) (Entry[T], error) {
	c.mu.Lock()
	gen := c.generation
	c.mu.Unlock()
	flightKey := key + "\x00" + strconv.FormatUint(gen, 10)

	ch := c.flight.DoChan(flightKey, func() (any, error) {
		v, err := c.fetchWithRetry(context.WithoutCancel(ctx), func(ctx context.Context) (any, error) {
			return fetch(ctx)
		})
		if err != nil {
			return nil, err
		}
		return c.store(key, v, ttl, gen), nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return Entry[T]{}, ctx.Err()
	case res = <-ch:
	}

	if res.Err != nil {
		c.logger.Warn().Err(res.Err).Str("key", key).Msg("cache fetch failed")
		if stale, ok := c.lookup(key); ok {
			if v, ok := stale.value.(T); ok {
				return Entry[T]{Value: v, FetchedAt: stale.fetchedAt, Stale: true}, res.Err
			}
		}
		return Entry[T]{}, res.Err
	}

	e := res.Val.(entry)
	v, ok := e.value.(T)
	if !ok {
		return Entry[T]{}, fmt.Errorf("key %q: %w", key, ErrTypeMismatch)
	}
	return Entry[T]{Value: v, FetchedAt: e.fetchedAt}, nil
}

func (c *Cache) fetchWithRetry(ctx context.Context, fetch func(context.Context) (any, error)) (any, error) {
	var value any
	err := retry.Do(ctx, retry.WithMaxRetries(1, retry.NewConstant(c.delay)), func(ctx context.Context) error {
		v, err := fetch(ctx)
		if err != nil {
			if c.retryable(err) {
				c.logger.Debug().Err(err).Msg("retrying failed fetch")
				return retry.RetryableError(err)
			}
			return err
		}
		value = v
		return nil
	})
	return value, err
}

// store keeps v under key unless Invalidate or Clear ran since the fetch
// started at generation gen. Such a value is returned to its callers but
// never stored.
func (c *Cache) store(key string, v any, ttl time.Duration, gen uint64) entry {
	now := c.now()
	e := entry{value: v, fetchedAt: now, staleAt: now.Add(ttl)}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		c.logger.Debug().Str("key", key).Msg("dropping value fetched before invalidation")
		return e
	}
	c.entries[key] = e
	return e
}

func (c *Cache) lookup(key string) (entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return e, ok
}

// Invalidate marks every entry whose key starts with prefix as stale. Stale
// values stay available as a fallback for a failing refetch until swept.
// Fetches already in flight are not shared with later callers.
func (c *Cache) Invalidate(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	n := 0
	for k, e := range c.entries {
		if strings.HasPrefix(k, prefix) {
			e.staleAt = time.Time{}
			c.entries[k] = e
			n++
		}
	}
	return n
}

// Sweep removes entries that have been stale for longer than retention and
// returns how many were removed.
func (c *Cache) Sweep(retention time.Duration) int {
	cutoff := c.now().Add(-retention)

	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for k, e := range c.entries {
		staleSince := e.staleAt
		if staleSince.IsZero() {
			staleSince = e.fetchedAt
		}
		if staleSince.Before(cutoff) {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// Clear drops every entry. It is called on logout.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	clear(c.entries)
}

// Len returns the number of stored entries, fresh or stale.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (e entry) stale(now time.Time) bool {
	return !now.Before(e.staleAt)
}

func defaultRetryable(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Key joins a resource name and a canonical query state into a cache key.
func Key(resource, state string) string {
	if state == "" {
		return resource
	}
	return resource + "?" + state
}
