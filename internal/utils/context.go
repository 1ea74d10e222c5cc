// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared by the client and the server:
// typed context keys, token helpers, JSON response writing, the resty
// HTTP client and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

// contextKey is a private type for context keys, preventing collisions with
// keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the authenticated user identifier (string).
	UserIDCtxKey = contextKey("userID")
	// RoleCtxKey stores the role of the authenticated user (models.Role).
	RoleCtxKey = contextKey("role")
)

// GetUserIDFromContext returns the user identifier stored by the auth
// middleware. ok is false when it is missing or empty.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetRoleFromContext returns the role stored by the auth middleware.
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok
}

// WithUser stores the user identifier and role in ctx.
func WithUser(ctx context.Context, userID string, role models.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, RoleCtxKey, role)
}
