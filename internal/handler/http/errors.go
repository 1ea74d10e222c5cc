// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the authentication middleware and request decoding.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of
	// the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the bearer token is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	errInvalidJSON     = errors.New("invalid JSON was passed")
	errInvalidForm     = errors.New("invalid multipart form")
	errImageTooLarge   = errors.New("image is too large")
	errInvalidDate     = errors.New("invalid date")
	errMissingIdentity = errors.New("no authenticated user in context")
)
