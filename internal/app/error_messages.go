// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages shared by the request
// client, the terminal UI and the API server.
//
// The Status* constants form the fixed status-to-message table shown to the
// user when an API call fails. The Msg* constants are written into API
// response bodies and log entries.
package app

import "net/http"

const (
	StatusBadRequest          = "The request was invalid. Please check the entered data."
	StatusUnauthorized        = "Your session has expired. Please sign in again."
	StatusForbidden           = "You do not have permission to perform this action."
	StatusNotFound            = "The requested resource was not found."
	StatusRequestTimeout      = "The request timed out. Please try again."
	StatusTooManyRequests     = "Too many requests. Please wait a moment and try again."
	StatusInternalServerError = "The server encountered an error. Please try again later."
	StatusBadGateway          = "The server is unreachable right now (bad gateway)."
	StatusServiceUnavailable  = "The service is temporarily unavailable."
	StatusGatewayTimeout      = "The server took too long to respond."

	// StatusGeneric is used for every status missing from the table.
	StatusGeneric = "Something went wrong. Please try again."

	// StatusNetwork is shown when no response was received at all.
	StatusNetwork = "Unable to reach the server. Check your connection."
)

var statusMessages = map[int]string{
	http.StatusBadRequest:          StatusBadRequest,
	http.StatusUnauthorized:        StatusUnauthorized,
	http.StatusForbidden:           StatusForbidden,
	http.StatusNotFound:            StatusNotFound,
	http.StatusRequestTimeout:      StatusRequestTimeout,
	http.StatusTooManyRequests:     StatusTooManyRequests,
	http.StatusInternalServerError: StatusInternalServerError,
	http.StatusBadGateway:          StatusBadGateway,
	http.StatusServiceUnavailable:  StatusServiceUnavailable,
	http.StatusGatewayTimeout:      StatusGatewayTimeout,
}

// StatusMessage returns the user facing message for an HTTP status code,
// falling back to [StatusGeneric].
func StatusMessage(code int) string {
	if msg, ok := statusMessages[code]; ok {
		return msg
	}
	return StatusGeneric
}

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the email/password pair does
	// not match an active user.
	MsgInvalidLoginPassword = "invalid email/password"

	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified or its expiry has passed.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgRefreshTokenInvalid = "refresh token is expired or invalid"
	MsgNoUserIDProvided    = "no user ID provided"
	MsgAccessDenied        = "access denied"
	MsgLoginFailed         = "login failed"
	MsgDataNotFound        = "data not found"
	MsgAlreadyExists       = "resource already exists"
	MsgUnknownResource     = "unknown resource"
	MsgInvalidDateRange    = "invalid startDate/endDate"
	MsgDeleted             = "deleted"
	MsgCreated             = "created"
	MsgUpdated             = "updated"
	MsgLoggedOut           = "logged out"
)
