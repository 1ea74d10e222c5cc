// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}

// mapLoginError treats a rejected login as invalid credentials.
func mapLoginError(err error) error {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	return mapAdapterError(err)
}

// retryableFetch reports whether a failed list or statistics fetch is worth
// the single cache retry. An expired session or a cancelled caller is not.
func retryableFetch(err error) bool {
	return !errors.Is(err, adapter.ErrSessionExpired) &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}
