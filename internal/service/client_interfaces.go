// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/internal/cache"
	"github.com/MKhiriev/go-inventory-keeper/internal/query"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// SessionManager is the session surface the client services drive. It is
// implemented by *session.Store.
type SessionManager interface {
	Restore(ctx context.Context) error
	Snapshot() models.Session
	IsAuthenticated() bool
	Login(ctx context.Context, user *models.User, pair models.TokenPair) error
	Logout(ctx context.Context, reason error) error
}

// ClientAuthService signs the user in and out of the API.
type ClientAuthService interface {
	// Login exchanges the credentials for a token pair and stores the
	// session. Returns ErrInvalidCredentials when the server rejects them.
	Login(ctx context.Context, email, password string) (*models.User, error)

	// Logout revokes the refresh token on the server when possible and
	// always clears the local session.
	Logout(ctx context.Context) error

	// RestoreSession loads the persisted session and reports whether the
	// user is still signed in.
	RestoreSession(ctx context.Context) (bool, error)
}

// ListSnapshot is one list result together with the query state that
// produced it.
type ListSnapshot[T any] struct {
	State query.State
	cache.Entry[models.ListResult[T]]
}

// ListQuery binds a synchronizer to a cached list endpoint. The cache key is
// the resource plus the full query state.
type ListQuery[T any] interface {
	// Result returns the cached page for the current state, fetching it
	// when it is missing or stale.
	Result(ctx context.Context) (ListSnapshot[T], error)

	// Refetch fetches the current state regardless of freshness.
	Refetch(ctx context.Context) (ListSnapshot[T], error)

	Synchronizer() *query.Synchronizer

	// Close cancels pending debounced work of the synchronizer.
	Close()
}

// ClientResourceService is the client side of one CRUD resource. Every
// successful mutation invalidates the cached lists of the resource.
type ClientResourceService[T any] interface {
	// Name is the resource path, also used as the cache key prefix.
	Name() string

	// Query returns a list query synchronized with location.
	Query(location query.Location) ListQuery[T]

	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id string, item T) (T, error)
	Delete(ctx context.Context, id string) error
}

// ClientProductService adds the multipart product mutations.
type ClientProductService interface {
	ClientResourceService[models.Product]

	CreateProduct(ctx context.Context, form models.ProductForm) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, form models.ProductForm) (models.Product, error)
}

// ClientStatisticsService reads the statistics endpoints through the cache,
// keyed by endpoint and date range.
type ClientStatisticsService interface {
	ProjectCompletion(ctx context.Context, r models.DateRange) (cache.Entry[models.ProjectCompletion], error)
	Users(ctx context.Context, r models.DateRange) (cache.Entry[models.UserStats], error)
	IncompleteProjects(ctx context.Context, r models.DateRange) (cache.Entry[models.IncompleteProjects], error)
	ProductManager(ctx context.Context, r models.DateRange) (cache.Entry[models.ProductManagerStats], error)

	// Invalidate marks every cached statistic stale.
	Invalidate()
}
