// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName         = errors.New("name is required")
	ErrInvalidStatus     = errors.New("invalid project status")
	ErrInvalidAmount     = errors.New("amount must be a non-negative number")
	ErrCorruptAttributes = errors.New("attributes are not a JSON object")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrEmptyPassword     = errors.New("password is required")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidDateRange  = errors.New("end date is before start date")
)
