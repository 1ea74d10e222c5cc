// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/validators"
)

// validationError wraps a validator failure into the service error the
// handlers map to a response. The validator error stays in the chain.
func validationError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrInvalidRole):
		return fmt.Errorf("%w: %w", ErrInvalidRole, err)
	case errors.Is(err, validators.ErrInvalidDateRange):
		return fmt.Errorf("%w: %w", ErrInvalidDateRange, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
