// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"testing"

	"github.com/MKhiriev/go-inventory-keeper/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	assert.NoError(t, validationError(nil))

	tests := []struct {
		err  error
		want error
	}{
		{validators.ErrInvalidRole, ErrInvalidRole},
		{validators.ErrInvalidDateRange, ErrInvalidDateRange},
		{validators.ErrEmptyName, ErrInvalidDataProvided},
		{fmt.Errorf("price: %w", validators.ErrInvalidAmount), ErrInvalidDataProvided},
	}
	for _, tt := range tests {
		err := validationError(tt.err)
		assert.ErrorIs(t, err, tt.want)
		assert.ErrorIs(t, err, tt.err)
	}
}
