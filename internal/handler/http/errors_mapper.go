// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-inventory-keeper/internal/app"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
)

// errorResponse is the status and envelope message written for an error.
type errorResponse struct {
	status  int
	message string
}

// errorResponses is consulted in order, the first matching sentinel wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrInvalidRole, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrInvalidDateRange, errorResponse{http.StatusBadRequest, app.MsgInvalidDateRange}},
	{service.ErrUnknownResource, errorResponse{http.StatusNotFound, app.MsgUnknownResource}},
	{service.ErrWrongPassword, errorResponse{http.StatusUnauthorized, app.MsgInvalidLoginPassword}},
	{service.ErrUserIsInactive, errorResponse{http.StatusUnauthorized, app.MsgInvalidLoginPassword}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{service.ErrRefreshTokenInvalid, errorResponse{http.StatusUnauthorized, app.MsgRefreshTokenInvalid}},
	{service.ErrTokenCreationFailed, errorResponse{http.StatusInternalServerError, app.MsgLoginFailed}},

	{store.ErrEmailAlreadyExists, errorResponse{http.StatusConflict, app.MsgAlreadyExists}},
	{store.ErrNoUserWasFound, errorResponse{http.StatusNotFound, app.MsgDataNotFound}},
	{store.ErrRecordNotFound, errorResponse{http.StatusNotFound, app.MsgDataNotFound}},

	{errInvalidJSON, errorResponse{http.StatusBadRequest, errInvalidJSON.Error()}},
	{errInvalidForm, errorResponse{http.StatusBadRequest, errInvalidForm.Error()}},
	{errInvalidDate, errorResponse{http.StatusBadRequest, app.MsgInvalidDateRange}},
	{errImageTooLarge, errorResponse{http.StatusRequestEntityTooLarge, errImageTooLarge.Error()}},
	{errMissingIdentity, errorResponse{http.StatusUnauthorized, app.MsgNoUserIDProvided}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and writes the failure envelope. Server side errors
// are logged at error level, client mistakes at warn level.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	utils.WriteFailure(w, resp.message, resp.status)
}
