// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/internal/app"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/go-resty/resty/v2"
)

// maxServerMessage bounds the raw body kept as the server message when the
// body is not an envelope.
const maxServerMessage = 512

func newNetworkError(req Request, url string, err error) *APIError {
	return &APIError{
		Kind:    KindNetwork,
		Method:  req.method,
		URL:     url,
		Message: app.StatusNetwork,
		Err:     err,
	}
}

// mapHTTPError converts a non-2xx response into a status error. The user
// facing message comes from the status table; the body message is kept as
// ServerMessage.
func mapHTTPError(req Request, resp *resty.Response) *APIError {
	return &APIError{
		Kind:          KindStatus,
		Status:        resp.StatusCode(),
		Method:        req.method,
		URL:           resp.Request.URL,
		Message:       app.StatusMessage(resp.StatusCode()),
		ServerMessage: serverMessage(resp.Body()),
	}
}

// logicalFailure converts a 2xx envelope with success:false into a status
// error carrying the server message.
func logicalFailure(req Request, resp *resty.Response, env models.Envelope) *APIError {
	msg := strings.TrimSpace(env.Message)
	userMsg := msg
	if userMsg == "" {
		userMsg = app.StatusGeneric
	}
	return &APIError{
		Kind:          KindStatus,
		Status:        resp.StatusCode(),
		Method:        req.method,
		URL:           resp.Request.URL,
		Message:       userMsg,
		ServerMessage: msg,
	}
}

func decodeError(req Request, resp *resty.Response, err error) *APIError {
	return &APIError{
		Kind:    KindDecode,
		Status:  resp.StatusCode(),
		Method:  req.method,
		URL:     resp.Request.URL,
		Message: app.StatusGeneric,
		Err:     err,
	}
}

// sessionExpired turns the original 401 error into the error surfaced after
// a failed recovery. The status table message of the 401 is kept.
func sessionExpired(original *APIError, cause error) *APIError {
	expired := *original
	expired.Kind = KindSessionExpired
	expired.Err = errors.Join(original.Err, cause)
	return &expired
}

func serverMessage(body []byte) string {
	var env models.Envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return env.Message
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > maxServerMessage {
		msg = msg[:maxServerMessage]
	}
	return msg
}

// payloadError reports a data payload that does not match the expected type.
func payloadError(req Request, resp *Response, err error) *APIError {
	return &APIError{
		Kind:    KindDecode,
		Status:  resp.Status,
		Method:  req.method,
		URL:     req.path,
		Message: app.StatusGeneric,
		Err:     err,
	}
}
