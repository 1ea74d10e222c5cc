// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService authenticates users of the API server and manages their
// token pairs.
type AuthService interface {
	// Login verifies the credentials and issues a new token pair.
	Login(ctx context.Context, creds models.Credentials) (models.User, models.TokenPair, error)
	// Refresh consumes refreshToken and issues a new pair. A refresh token
	// is valid once.
	Refresh(ctx context.Context, refreshToken string) (models.User, models.TokenPair, error)
	// Logout revokes every refresh token of userID.
	Logout(ctx context.Context, userID string) error
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// EnsureAdmin creates an administrator with the given credentials when
	// no user with that email exists.
	EnsureAdmin(ctx context.Context, email, password string) error
}

// UserService manages application users.
type UserService interface {
	List(ctx context.Context, params models.ListParams) (models.ListResult[models.User], error)
	Get(ctx context.Context, id string) (models.User, error)
	Create(ctx context.Context, in models.UserInput) (models.User, error)
	Update(ctx context.Context, id string, in models.UserInput) (models.User, error)
	Delete(ctx context.Context, id string) error
}

// RecordService manages the generic CRUD resources. Entities travel as JSON
// documents.
type RecordService interface {
	List(ctx context.Context, kind models.RecordKind, params models.ListParams) (models.ListResult[map[string]any], error)
	Get(ctx context.Context, kind models.RecordKind, id string) (map[string]any, error)
	Create(ctx context.Context, kind models.RecordKind, doc map[string]any) (map[string]any, error)
	Update(ctx context.Context, kind models.RecordKind, id string, doc map[string]any) (map[string]any, error)
	Delete(ctx context.Context, kind models.RecordKind, id string) error
}

// StatisticsService computes the statistics screens.
type StatisticsService interface {
	ProjectCompletion(ctx context.Context, r models.DateRange) (models.ProjectCompletion, error)
	Users(ctx context.Context, r models.DateRange) (models.UserStats, error)
	IncompleteProjects(ctx context.Context, r models.DateRange) (models.IncompleteProjects, error)
	ProductManager(ctx context.Context, r models.DateRange) (models.ProductManagerStats, error)
}

// AppInfoService reports the build of the running server.
type AppInfoService interface {
	Version(ctx context.Context) models.VersionInfo
}
