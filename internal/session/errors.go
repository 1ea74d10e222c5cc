// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrIncompleteTokens is returned when a login or refresh yields a token
	// pair with a missing token.
	ErrIncompleteTokens = errors.New("incomplete token pair")
	// ErrPersistSession wraps failures of the session persister.
	ErrPersistSession = errors.New("session could not be persisted")
	// ErrSessionChanged is returned by UpdateTokens when the session was
	// logged out or replaced while the refresh was in flight.
	ErrSessionChanged = errors.New("session changed during token refresh")
)
