// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/session"
	"github.com/MKhiriev/go-inventory-keeper/internal/validators"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type clientAuthService struct {
	api       adapter.AuthAPI
	session   SessionManager
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientAuthService(api adapter.AuthAPI, sess SessionManager, log *logger.Logger) ClientAuthService {
	return &clientAuthService{
		api:       api,
		session:   sess,
		validator: validators.NewInventoryValidator(),
		logger:    log,
	}
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	creds := models.Credentials{Email: strings.TrimSpace(email), Password: password}
	if err := a.validator.Validate(ctx, creds); err != nil {
		return nil, validationError(err)
	}

	resp, err := a.api.Login(ctx, creds)
	if err != nil {
		return nil, mapLoginError(err)
	}

	if err = a.session.Login(ctx, resp.User, resp.Pair()); err != nil {
		// the session is usable in memory even when it could not be written
		if !errors.Is(err, session.ErrPersistSession) {
			return nil, err
		}
		a.logger.Err(err).Msg("signed in without a persisted session")
	}

	a.logger.Info().Str("email", creds.Email).Msg("signed in")
	return resp.User, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if a.session.IsAuthenticated() {
		if err := a.api.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("server logout failed")
		}
	}
	return a.session.Logout(ctx, nil)
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (bool, error) {
	if err := a.session.Restore(ctx); err != nil {
		return false, err
	}
	return a.session.IsAuthenticated(), nil
}
