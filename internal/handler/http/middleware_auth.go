// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/internal/app"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// auth enforces bearer JWT authentication.
//
// The token is verified with AuthService.ParseToken; on success the user id
// and role are stored in the request context (see utils.WithUser). Any
// failure is answered with 401 and the failure envelope, which is what the
// client reacts to by refreshing its tokens.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteFailure(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			utils.WriteFailure(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		userID, err := token.UserID()
		if err != nil {
			log.Warn().Err(err).Msg("token without subject")
			utils.WriteFailure(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, userID, token.Role)))
	})
}

// requireRole answers 403 unless the authenticated user has one of roles.
// It must run after auth.
func requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := utils.GetRoleFromContext(r.Context())
			if !slices.Contains(roles, role) {
				logger.FromRequest(r).Warn().Str("role", string(role)).Msg("access denied")
				utils.WriteFailure(w, app.MsgAccessDenied, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// getTokenFromAuthHeader extracts the token of an "Authorization: Bearer
// <token>" header value. The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
