// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var creds models.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "invalid login or password"})
			return
		}
		writeJSON(w, http.StatusOK, refreshOK("access", "refresh"))
	}))
	defer srv.Close()

	store := newTestSession(t, "", "")
	auth := NewAuth(newTestClient(t, srv.URL, store))

	resp, err := auth.Login(context.Background(), models.Credentials{Email: "ann@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "access", resp.AccessToken)
	assert.Equal(t, "refresh", resp.RefreshToken)
	assert.Equal(t, "u1", resp.User.ID)

	_, err = auth.Login(context.Background(), models.Credentials{Email: "ann@example.com", Password: "wrong"})
	require.Error(t, err)
	apiErr, _ := AsAPIError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, KindStatus, apiErr.Kind, "login failures never trigger a refresh")
	assert.Equal(t, "invalid login or password", apiErr.ServerMessage)
}

func TestAuth_LoginAcceptsTokensInData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ok(map[string]any{"accessToken": "a", "refreshToken": "r"}))
	}))
	defer srv.Close()

	resp, err := NewAuth(newTestClient(t, srv.URL, newTestSession(t, "", ""))).
		Login(context.Background(), models.Credentials{Email: "x@y.z", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, models.TokenPair{AccessToken: "a", RefreshToken: "r"}, resp.Pair())
	assert.True(t, resp.Success)
}

func TestAuth_LogoutDoesNotRefresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/logout", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := newTestSession(t, "a", "r")
	err := NewAuth(newTestClient(t, srv.URL, store)).Logout(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, store.IsAuthenticated())
}
