// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		want     string
		wantUUID bool
	}{
		{name: "trace id is reused", headers: map[string]string{traceIDHeader: "trace-1"}, want: "trace-1"},
		{name: "request id is the fallback", headers: map[string]string{requestIDHeader: "req-1"}, want: "req-1"},
		{name: "trace id wins over request id", headers: map[string]string{traceIDHeader: "trace-1", requestIDHeader: "req-1"}, want: "trace-1"},
		{name: "generated", wantUUID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}

			var called bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.NotNil(t, logger.FromRequest(r))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/version", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			require.True(t, called)
			got := rec.Header().Get(traceIDHeader)
			if tt.wantUUID {
				assert.True(t, utils.IsUUID(got), got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
