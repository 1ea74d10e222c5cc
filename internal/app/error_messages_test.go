// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMessage(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{http.StatusBadRequest, StatusBadRequest},
		{http.StatusUnauthorized, StatusUnauthorized},
		{http.StatusForbidden, StatusForbidden},
		{http.StatusNotFound, StatusNotFound},
		{http.StatusRequestTimeout, StatusRequestTimeout},
		{http.StatusTooManyRequests, StatusTooManyRequests},
		{http.StatusInternalServerError, StatusInternalServerError},
		{http.StatusBadGateway, StatusBadGateway},
		{http.StatusServiceUnavailable, StatusServiceUnavailable},
		{http.StatusGatewayTimeout, StatusGatewayTimeout},
		{http.StatusTeapot, StatusGeneric},
		{http.StatusConflict, StatusGeneric},
		{0, StatusGeneric},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusMessage(tt.code))
		})
	}
}
