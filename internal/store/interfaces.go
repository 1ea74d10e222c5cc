// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_store_mock.go -package=mock

// UserRepository stores application users.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context, params models.ListParams) ([]models.User, int, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// RecordRepository stores clients, projects, tasks, technicians and products.
type RecordRepository interface {
	CreateRecord(ctx context.Context, record models.Record) (models.Record, error)
	GetRecord(ctx context.Context, kind models.RecordKind, id string) (models.Record, error)
	ListRecords(ctx context.Context, kind models.RecordKind, params models.ListParams) ([]models.Record, int, error)
	UpdateRecord(ctx context.Context, record models.Record) (models.Record, error)
	DeleteRecord(ctx context.Context, kind models.RecordKind, id string) error
}

// RefreshTokenRepository stores hashes of issued refresh tokens.
type RefreshTokenRepository interface {
	SaveRefreshToken(ctx context.Context, token models.RefreshToken) error
	// ConsumeRefreshToken deletes and returns the token with tokenHash, so a
	// refresh token can be used only once.
	ConsumeRefreshToken(ctx context.Context, tokenHash string) (models.RefreshToken, error)
	DeleteUserRefreshTokens(ctx context.Context, userID string) error
}

// StatisticsRepository runs the aggregate queries of the statistics screens.
type StatisticsRepository interface {
	ProjectStatusCounts(ctx context.Context, r models.DateRange) (map[models.ProjectStatus]int, error)
	UserStats(ctx context.Context, r models.DateRange) (models.UserStats, error)
	IncompleteProjects(ctx context.Context, r models.DateRange, limit int) ([]models.Record, error)
	ProductManagerStats(ctx context.Context, r models.DateRange) ([]models.ManagerProducts, error)
}
