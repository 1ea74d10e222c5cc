// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import "errors"

var (
	// ErrTypeMismatch is returned when a key holds a value of another type
	// than the one requested.
	ErrTypeMismatch = errors.New("cached value has an unexpected type")
)
