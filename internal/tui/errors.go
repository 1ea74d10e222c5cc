// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
)

var (
	errEmptyCredentials = errors.New("email and password are required")
	errInvalidDate      = errors.New("dates must look like 2006-01-02")
	errNothingSelected  = errors.New("nothing selected")
)

const (
	msgServerUnavailable = "No network connection or the server is unavailable"
	msgSessionExpired    = "Your session has expired, please sign in again"
	msgInvalidLogin      = "Invalid email or password"
)

// humanizeError returns the text shown in the status line for err.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrInvalidCredentials):
		return msgInvalidLogin
	case errors.Is(err, adapter.ErrSessionExpired):
		return msgSessionExpired
	case errors.Is(err, adapter.ErrNetwork), errors.Is(err, context.DeadlineExceeded):
		return msgServerUnavailable
	}
	return clean(err.Error())
}
