// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-inventory-keeper/internal/app"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// login answers POST /auth/login with the user and a fresh token pair.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, r, errInvalidJSON)
		return
	}

	user, pair, err := h.services.AuthService.Login(r.Context(), creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("id", user.ID).Msg("user successfully logged in")
	writeAuth(w, user, pair)
}

// refreshToken answers POST /auth/refresh-token. The presented refresh
// token is consumed and a new pair is returned.
func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errInvalidJSON)
		return
	}

	user, pair, err := h.services.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("id", user.ID).Msg("tokens refreshed")
	writeAuth(w, user, pair)
}

// logout answers POST /auth/logout by revoking every refresh token of the
// authenticated user.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errMissingIdentity)
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), userID); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteData(w, nil, app.MsgLoggedOut, http.StatusOK)
}

// writeAuth writes the token pair at the top level of the body, next to
// the envelope fields.
func writeAuth(w http.ResponseWriter, user models.User, pair models.TokenPair) {
	utils.WriteJSON(w, models.AuthResponse{
		Success:      true,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         &user,
	}, http.StatusOK)
}
