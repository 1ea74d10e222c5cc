// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SessionStore is the part of the session store the request client needs.
// Tokens are read on every send, never cached by the client.
type SessionStore interface {
	AccessToken() string
	RefreshToken() string
	// UpdateTokens stores the pair returned for the exchanged refresh token.
	// It fails with session.ErrSessionChanged when the session no longer
	// holds that token.
	UpdateTokens(ctx context.Context, exchanged string, pair models.TokenPair, user *models.User) error
	Logout(ctx context.Context, reason error) error
}

// AuthAPI signs users in and out.
type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)
	Logout(ctx context.Context) error
}

// ResourceAPI is the CRUD surface shared by every list resource.
type ResourceAPI[T any] interface {
	List(ctx context.Context, params models.ListParams) (models.ListResult[T], error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id string, item T) (T, error)
	Delete(ctx context.Context, id string) error
}

// ProductAPI adds the multipart product mutations to the resource surface.
type ProductAPI interface {
	ResourceAPI[models.Product]
	CreateProduct(ctx context.Context, form models.ProductForm) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, form models.ProductForm) (models.Product, error)
}

// StatisticsAPI reads the aggregate statistics endpoints.
type StatisticsAPI interface {
	ProjectCompletion(ctx context.Context, r models.DateRange) (models.ProjectCompletion, error)
	Users(ctx context.Context, r models.DateRange) (models.UserStats, error)
	IncompleteProjects(ctx context.Context, r models.DateRange) (models.IncompleteProjects, error)
	ProductManager(ctx context.Context, r models.DateRange) (models.ProductManagerStats, error)
}

var (
	_ AuthAPI                          = (*Auth)(nil)
	_ ResourceAPI[models.Project]      = (*Resource[models.Project])(nil)
	_ ProductAPI                       = (*Products)(nil)
	_ StatisticsAPI                    = (*Statistics)(nil)
)
