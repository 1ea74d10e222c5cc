// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an [APIError].
type Kind int

const (
	// KindNetwork means no response was received.
	KindNetwork Kind = iota + 1
	// KindStatus means the server answered with a non-2xx status or with
	// success:false.
	KindStatus
	// KindSessionExpired means a 401 could not be recovered by a refresh and
	// the session was cleared.
	KindSessionExpired
	// KindDecode means the response body was not the expected JSON.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStatus:
		return "status"
	case KindSessionExpired:
		return "session expired"
	case KindDecode:
		return "decode"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

var (
	ErrNetwork        = errors.New("network error")
	ErrSessionExpired = errors.New("session expired")
	ErrDecode         = errors.New("malformed response")

	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrRateLimited  = errors.New("rate limited")
	ErrServer       = errors.New("server error")
	// ErrLogicalFailure marks a 2xx response whose body said success:false.
	ErrLogicalFailure = errors.New("request was not successful")

	// ErrNoRefreshToken is the cause of a session expiry when no refresh
	// token was stored.
	ErrNoRefreshToken = errors.New("no refresh token")
	// ErrIncompleteRefresh is the cause of a session expiry when the refresh
	// response lacked one of the tokens.
	ErrIncompleteRefresh = errors.New("refresh response is incomplete")
)

// APIError is the error returned for every failed request. Error returns the
// user facing Message; the remaining fields are kept for logging.
type APIError struct {
	Kind   Kind
	Status int
	Method string
	URL    string

	// Message is the user facing text from the status message table.
	Message string
	// ServerMessage is the message field of the response body, if any.
	ServerMessage string

	Err error
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap exposes the kind sentinel, the status sentinel and the cause.
func (e *APIError) Unwrap() []error {
	errs := make([]error, 0, 3)
	switch e.Kind {
	case KindNetwork:
		errs = append(errs, ErrNetwork)
	case KindSessionExpired:
		errs = append(errs, ErrSessionExpired)
	case KindDecode:
		errs = append(errs, ErrDecode)
	}
	if s := statusSentinel(e.Status); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func statusSentinel(code int) error {
	switch {
	case code == 0:
		return nil
	case code == http.StatusBadRequest:
		return ErrBadRequest
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code == http.StatusForbidden:
		return ErrForbidden
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusConflict:
		return ErrConflict
	case code == http.StatusTooManyRequests:
		return ErrRateLimited
	case code >= http.StatusInternalServerError:
		return ErrServer
	case code >= http.StatusOK && code < http.StatusMultipleChoices:
		return ErrLogicalFailure
	default:
		return nil
	}
}

// AsAPIError returns the *APIError in err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
