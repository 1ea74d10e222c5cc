// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the session-aware request client of the inventory API.
//
// Every request is described by an immutable [Request]. [Client.Do] attaches
// the current access token at send time, decodes the {success, data, message}
// envelope and, when the server answers 401, refreshes the token pair once and
// resends a copy of the request marked as retried. A failed refresh ends the
// session through [SessionStore.Logout].
//
// Failures are returned as *[APIError]. Its [Kind] separates network failures
// from status errors and expired sessions, and the sentinels in errors.go can
// be matched with [errors.Is].
//
// The typed endpoints ([Auth], [Resource], [Products], [Statistics]) are thin
// wrappers that build requests and decode payloads.
package adapter
