// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-inventory-keeper/internal/crypto"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reverseSealer is a reversible stand-in for crypto.Sealer.
type reverseSealer struct {
	err error
}

func (r reverseSealer) Seal(plaintext []byte) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	runes := []rune(string(plaintext))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return "sealed:" + string(runes), nil
}

func (r reverseSealer) Open(sealed string) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	body, ok := strings.CutPrefix(sealed, "sealed:")
	if !ok {
		return nil, crypto.ErrMalformedSealedData
	}
	back, _ := reverseSealer{}.Seal([]byte(body))
	return []byte(strings.TrimPrefix(back, "sealed:")), nil
}

func TestSessionCodec_Plain(t *testing.T) {
	c := sessionCodec{}
	sess := models.Session{AccessToken: "a", RefreshToken: "r"}

	p, err := c.encode(sess)
	require.NoError(t, err)
	assert.Equal(t, persistedSession{AccessToken: "a", RefreshToken: "r"}, p)

	back, err := c.decode(p)
	require.NoError(t, err)
	assert.Equal(t, sess, back)
}

func TestSessionCodec_Sealed(t *testing.T) {
	c := sessionCodec{sealer: reverseSealer{}}
	sess := models.Session{User: &models.User{ID: "u1"}, AccessToken: "access", RefreshToken: "refresh"}

	p, err := c.encode(sess)
	require.NoError(t, err)
	assert.True(t, p.Sealed)
	assert.Equal(t, "sealed:ssecca", p.AccessToken)
	assert.Equal(t, "sealed:hserfer", p.RefreshToken)

	back, err := c.decode(p)
	require.NoError(t, err)
	assert.Equal(t, sess, back)
}

func TestSessionCodec_EmptyTokensStayEmpty(t *testing.T) {
	c := sessionCodec{sealer: reverseSealer{}}

	p, err := c.encode(models.Session{})
	require.NoError(t, err)
	assert.Empty(t, p.AccessToken)
	assert.Empty(t, p.RefreshToken)

	back, err := c.decode(p)
	require.NoError(t, err)
	assert.True(t, back.IsZero())
}

func TestSessionCodec_PlainRecordWithSealer(t *testing.T) {
	c := sessionCodec{sealer: reverseSealer{}}

	sess, err := c.decode(persistedSession{AccessToken: "a", RefreshToken: "r"})
	require.NoError(t, err)
	assert.Equal(t, "a", sess.AccessToken)
}

func TestSessionCodec_SealedWithoutKey(t *testing.T) {
	_, err := sessionCodec{}.decode(persistedSession{AccessToken: "x", Sealed: true})
	assert.ErrorIs(t, err, ErrSessionSealed)
}

func TestSessionCodec_Errors(t *testing.T) {
	boom := errors.New("boom")
	c := sessionCodec{sealer: reverseSealer{err: boom}}

	_, err := c.encode(models.Session{AccessToken: "a"})
	assert.ErrorIs(t, err, boom)

	_, err = c.decode(persistedSession{AccessToken: "a", Sealed: true})
	assert.ErrorIs(t, err, ErrSessionCorrupted)
	assert.ErrorIs(t, err, boom)
}

func TestFileSessionStorage_SealedWithPassphrase(t *testing.T) {
	sealer, err := crypto.NewPassphraseSealer("local secret")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "session.json")
	s := NewFileSessionStorage(path, sealer, logger.Nop())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, models.Session{AccessToken: "access-token", RefreshToken: "refresh-token"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "refresh-token")
	assert.Contains(t, string(raw), `"sealed": true`)

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-token", loaded.AccessToken)
	assert.Equal(t, "refresh-token", loaded.RefreshToken)

	_, err = NewFileSessionStorage(path, nil, logger.Nop()).Load(ctx)
	assert.ErrorIs(t, err, ErrSessionSealed)
}
