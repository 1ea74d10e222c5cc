// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// API server errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrUserIsInactive      = errors.New("user is inactive")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrRefreshTokenInvalid     = errors.New("refresh token is expired or invalid")

	ErrUnknownResource  = errors.New("unknown resource")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidRole      = errors.New("invalid role")
)

// Client errors.
var (
	// ErrInvalidCredentials is returned by the client login when the server
	// rejects the email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAlreadyExists is returned when a create or update collides with an
	// existing entity.
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
)
