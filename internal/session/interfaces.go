// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_persister_mock.go -package=mock

// Persister is the durable storage boundary of the session.
type Persister interface {
	// Load returns the stored session, or a zero session when nothing is
	// stored.
	Load(ctx context.Context) (models.Session, error)
	// Save replaces the stored session.
	Save(ctx context.Context, s models.Session) error
	// Clear removes the stored session entirely.
	Clear(ctx context.Context) error
}

// LogoutListener is notified after the session has been cleared. reason is
// nil for a user initiated logout and the cause for a forced one.
type LogoutListener func(reason error)
