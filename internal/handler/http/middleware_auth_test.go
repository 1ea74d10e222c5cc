// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-inventory-keeper/internal/app"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Basic abc", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Bearer  ", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(m *testServices)
		wantStatus int
		wantUser   string
	}{
		{
			name:       "no header",
			setup:      func(*testServices) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Token abc",
			setup:      func(*testServices) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer abc",
			setup: func(m *testServices) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "abc").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "token without subject",
			header: "Bearer abc",
			setup: func(m *testServices) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "abc").Return(tokenFor("", models.RoleUser), nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer abc",
			setup: func(m *testServices) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "abc").Return(tokenFor("u1", models.RoleManager), nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   "u1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tt.setup(m)

			var gotUser string
			var gotRole models.Role
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = utils.GetUserIDFromContext(r.Context())
				gotRole, _ = utils.GetRoleFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/projects", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantUser, gotUser)
				assert.Equal(t, models.RoleManager, gotRole)
				return
			}
			assert.False(t, envelope(t, rec).Success)
			assert.Empty(t, gotUser, "next must not run")
		})
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mw := requireRole(models.RoleAdmin)(next)

	for role, want := range map[models.Role]int{
		models.RoleAdmin:   http.StatusNoContent,
		models.RoleManager: http.StatusForbidden,
		"":                 http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodPost, "/users", nil)
		req = req.WithContext(utils.WithUser(req.Context(), "u1", role))
		rec := httptest.NewRecorder()

		mw.ServeHTTP(rec, req)

		assert.Equal(t, want, rec.Code, role)
		if want == http.StatusForbidden {
			assert.Equal(t, app.MsgAccessDenied, envelope(t, rec).Message)
		}
	}
}
