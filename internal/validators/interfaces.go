// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inventory input before it reaches storage.
//
// A Validator accepts a value and an optional list of field names. With no
// fields every rule of the value's type is applied; with fields only the
// named rules run, which is how partial updates are checked.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
