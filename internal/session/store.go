// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// Store is the injectable session context. It is safe for concurrent use.
type Store struct {
	// write serializes every change together with its persistence, so the
	// stored session always matches the last change made in memory.
	write sync.Mutex

	mu        sync.RWMutex
	current   models.Session
	listeners []LogoutListener

	persister Persister
	logger    *logger.Logger
}

// NewStore returns an empty store. A nil persister keeps the session in
// memory only.
func NewStore(persister Persister, log *logger.Logger) *Store {
	return &Store{persister: persister, logger: log}
}

// Restore loads the persisted session into memory.
func (s *Store) Restore(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}

	stored, err := s.persister.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistSession, err)
	}
	stored.AccessTokenExpiresAt = s.expiry(stored.AccessToken)

	s.write.Lock()
	defer s.write.Unlock()
	s.mu.Lock()
	s.current = stored
	s.mu.Unlock()

	s.logger.Debug().Bool("authenticated", stored.AccessToken != "").Msg("session restored")
	return nil
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.current
	if snap.User != nil {
		u := *snap.User
		snap.User = &u
	}
	return snap
}

// AccessToken returns the current access token, read at call time.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.AccessToken
}

// RefreshToken returns the current refresh token.
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.RefreshToken
}

// IsAuthenticated reports whether an access token is present.
func (s *Store) IsAuthenticated() bool {
	return s.AccessToken() != ""
}

// Login replaces the session with the signed-in user and its tokens.
func (s *Store) Login(ctx context.Context, user *models.User, pair models.TokenPair) error {
	if !pair.Complete() {
		return ErrIncompleteTokens
	}

	next := models.Session{
		User:                 user,
		AccessToken:          pair.AccessToken,
		RefreshToken:         pair.RefreshToken,
		AccessTokenExpiresAt: s.expiry(pair.AccessToken),
	}

	s.write.Lock()
	defer s.write.Unlock()
	return s.replaceLocked(ctx, next)
}

// UpdateTokens stores the pair a refresh returned for the refresh token
// exchanged. When the session no longer holds that refresh token, because of
// a logout or another login in the meantime, the pair is dropped and
// ErrSessionChanged is returned. The user is replaced only when the refresh
// response carried one.
func (s *Store) UpdateTokens(ctx context.Context, exchanged string, pair models.TokenPair, user *models.User) error {
	if !pair.Complete() {
		return ErrIncompleteTokens
	}
	expiresAt := s.expiry(pair.AccessToken)

	s.write.Lock()
	defer s.write.Unlock()

	next := s.Snapshot()
	if exchanged == "" || next.RefreshToken != exchanged {
		return ErrSessionChanged
	}
	next.AccessToken = pair.AccessToken
	next.RefreshToken = pair.RefreshToken
	next.AccessTokenExpiresAt = expiresAt
	if user != nil {
		next.User = user
	}
	return s.replaceLocked(ctx, next)
}

// Logout clears the session in memory and in storage, then notifies the
// logout listeners with reason. Listeners are notified even when clearing the
// storage fails.
func (s *Store) Logout(ctx context.Context, reason error) error {
	s.write.Lock()
	s.mu.Lock()
	s.current = models.Session{}
	listeners := append([]LogoutListener(nil), s.listeners...)
	s.mu.Unlock()

	var err error
	if s.persister != nil {
		if clearErr := s.persister.Clear(ctx); clearErr != nil {
			s.logger.Err(clearErr).Msg("failed to clear persisted session")
			err = fmt.Errorf("%w: %w", ErrPersistSession, clearErr)
		}
	}
	s.write.Unlock()

	if reason != nil {
		s.logger.Warn().Err(reason).Msg("session ended")
	} else {
		s.logger.Info().Msg("signed out")
	}
	for _, l := range listeners {
		l(reason)
	}
	return err
}

// OnLogout registers l to be called after every logout.
func (s *Store) OnLogout(l LogoutListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// replaceLocked sets and persists next. s.write must be held.
func (s *Store) replaceLocked(ctx context.Context, next models.Session) error {
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	if s.persister == nil {
		return nil
	}
	if err := s.persister.Save(ctx, next); err != nil {
		s.logger.Err(err).Msg("failed to persist session")
		return fmt.Errorf("%w: %w", ErrPersistSession, err)
	}
	return nil
}

func (s *Store) expiry(accessToken string) time.Time {
	if accessToken == "" {
		return time.Time{}
	}
	exp, err := utils.TokenExpiry(accessToken)
	if err != nil {
		s.logger.Debug().Err(err).Msg("access token expiry is unknown")
	}
	return exp
}
