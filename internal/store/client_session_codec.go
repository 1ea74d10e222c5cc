// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/crypto"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// ErrSessionSealed is returned when a stored session has sealed tokens but no
// session key is configured.
var ErrSessionSealed = errors.New("stored session is sealed and no session key is configured")

// persistedSession is the stored record: {user, accessToken, refreshToken}.
// Sealed marks tokens encrypted by a [crypto.Sealer].
type persistedSession struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	Sealed       bool         `json:"sealed,omitempty"`
}

// sessionCodec converts sessions to the stored record. A nil sealer keeps
// the tokens as they are.
type sessionCodec struct {
	sealer crypto.Sealer
}

func (c sessionCodec) encode(s models.Session) (persistedSession, error) {
	p := persistedSession{User: s.User, AccessToken: s.AccessToken, RefreshToken: s.RefreshToken}
	if c.sealer == nil {
		return p, nil
	}

	var err error
	if p.AccessToken, err = c.seal(s.AccessToken); err != nil {
		return persistedSession{}, err
	}
	if p.RefreshToken, err = c.seal(s.RefreshToken); err != nil {
		return persistedSession{}, err
	}
	p.Sealed = true
	return p, nil
}

// decode accepts plain records even with a sealer, so a key can be added to
// an existing install.
func (c sessionCodec) decode(p persistedSession) (models.Session, error) {
	sess := models.Session{User: p.User, AccessToken: p.AccessToken, RefreshToken: p.RefreshToken}
	if !p.Sealed {
		return sess, nil
	}
	if c.sealer == nil {
		return models.Session{}, ErrSessionSealed
	}

	var err error
	if sess.AccessToken, err = c.open(p.AccessToken); err != nil {
		return models.Session{}, err
	}
	if sess.RefreshToken, err = c.open(p.RefreshToken); err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

func (c sessionCodec) seal(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	sealed, err := c.sealer.Seal([]byte(token))
	if err != nil {
		return "", fmt.Errorf("seal session token: %w", err)
	}
	return sealed, nil
}

func (c sessionCodec) open(sealed string) (string, error) {
	if sealed == "" {
		return "", nil
	}
	token, err := c.sealer.Open(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSessionCorrupted, err)
	}
	return string(token), nil
}
