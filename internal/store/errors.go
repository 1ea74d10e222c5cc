// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repositories. Callers match them with
// [errors.Is].
var (
	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already stored.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRecordNotFound is returned when no record of the requested kind has
	// the given id.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrRefreshTokenNotFound is returned when a refresh token is unknown or
	// was already used.
	ErrRefreshTokenNotFound = errors.New("refresh token was not found")

	// ErrSessionCorrupted is returned when a stored client session cannot be
	// decoded.
	ErrSessionCorrupted = errors.New("stored session is corrupted")
)

// Low-level database operation errors, wrapped around the driver error.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRow      = errors.New("failed to scan row")
	ErrScanningRows     = errors.New("failed to scan rows")
)
