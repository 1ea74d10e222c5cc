// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the authenticated state of the client: the signed-in user and
// the access/refresh token pair used by the request client.
//
// The zero value is the logged-out state.
type Session struct {
	// User is the profile returned by the API at login or refresh time.
	User *User `json:"user"`

	// AccessToken is the short-lived bearer credential attached to every
	// authenticated request.
	AccessToken string `json:"accessToken"`

	// RefreshToken is the longer-lived credential used to mint a new
	// access/refresh pair after the access token expires.
	RefreshToken string `json:"refreshToken"`

	// AccessTokenExpiresAt is read from the access token "exp" claim for
	// diagnostics. It is never used to decide whether to refresh.
	AccessTokenExpiresAt time.Time `json:"-"`
}

// IsZero reports whether the session holds no credentials at all.
func (s Session) IsZero() bool {
	return s.User == nil && s.AccessToken == "" && s.RefreshToken == ""
}

// TokenPair is the credential pair issued by the API on login and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Complete reports whether both tokens are present.
func (p TokenPair) Complete() bool {
	return p.AccessToken != "" && p.RefreshToken != ""
}
