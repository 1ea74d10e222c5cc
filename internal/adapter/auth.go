// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

// Auth calls the authentication endpoints.
type Auth struct {
	client *Client
}

func NewAuth(c *Client) *Auth {
	return &Auth{client: c}
}

// Login posts the credentials to /auth/login without a bearer token.
func (a *Auth) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	req := NewRequest(http.MethodPost, "/auth/login").
		WithBody(creds).
		WithoutAuth()

	resp, err := a.client.Do(ctx, req)
	if err != nil {
		return models.AuthResponse{}, err
	}

	auth, err := decodeAuth(resp)
	if err != nil {
		return models.AuthResponse{}, payloadError(req, resp, err)
	}
	if !auth.Pair().Complete() {
		return models.AuthResponse{}, payloadError(req, resp, ErrIncompleteRefresh)
	}
	return auth, nil
}

// Logout revokes the refresh tokens of the signed-in user. A 401 is not
// recovered since the session is ending anyway.
func (a *Auth) Logout(ctx context.Context) error {
	_, err := a.client.Do(ctx, NewRequest(http.MethodPost, "/auth/logout").retry())
	return err
}
