// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; access tokens are HMAC-SHA256
// signed JWTs and refresh tokens are opaque values stored as SHA-256 hashes.
type authService struct {
	userRepository  store.UserRepository
	tokenRepository store.RefreshTokenRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration

	ids    *utils.UUIDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the user and refresh
// token repositories and populated with the token settings from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(users store.UserRepository, tokens store.RefreshTokenRepository, cfg config.ServerApp, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       users,
		tokenRepository:      tokens,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		ids:                  utils.NewUUIDGenerator(),
		now:                  time.Now,
		logger:               logger,
	}
}

// Login authenticates an existing user.
//
// Returns the user and a fresh token pair or:
//   - ErrInvalidDataProvided if the email or password is empty.
//   - ErrWrongPassword if no user has that email or the password differs.
//   - ErrUserIsInactive if the account was deactivated.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, models.TokenPair, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(creds.Email)
	if email == "" || creds.Password == "" {
		log.Error().Str("email", email).Msg("invalid credentials provided")
		return models.User{}, models.TokenPair{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("email", email).Msg("login for unknown email")
		return models.User{}, models.TokenPair{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, models.TokenPair{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		log.Warn().Str("id", user.ID).Msg("wrong password")
		return models.User{}, models.TokenPair{}, ErrWrongPassword
	}
	if !user.IsActive {
		return models.User{}, models.TokenPair{}, ErrUserIsInactive
	}

	pair, err := a.issuePair(ctx, user)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}
	return user, pair, nil
}

// Refresh rotates the refresh token: the presented token is consumed and a
// new pair is issued for its owner.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.User, models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if refreshToken == "" {
		return models.User{}, models.TokenPair{}, ErrRefreshTokenInvalid
	}

	stored, err := a.tokenRepository.ConsumeRefreshToken(ctx, utils.HashToken(refreshToken))
	if errors.Is(err, store.ErrRefreshTokenNotFound) {
		log.Warn().Msg("unknown or reused refresh token")
		return models.User{}, models.TokenPair{}, ErrRefreshTokenInvalid
	}
	if err != nil {
		return models.User{}, models.TokenPair{}, fmt.Errorf("refresh token lookup failed: %w", err)
	}
	if stored.Expired(a.now()) {
		log.Warn().Str("user_id", stored.UserID).Msg("expired refresh token")
		return models.User{}, models.TokenPair{}, ErrRefreshTokenInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, stored.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, models.TokenPair{}, ErrRefreshTokenInvalid
	}
	if err != nil {
		return models.User{}, models.TokenPair{}, fmt.Errorf("user search by id failed: %w", err)
	}
	if !user.IsActive {
		return models.User{}, models.TokenPair{}, ErrUserIsInactive
	}

	pair, err := a.issuePair(ctx, user)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}
	return user, pair, nil
}

func (a *authService) Logout(ctx context.Context, userID string) error {
	if err := a.tokenRepository.DeleteUserRefreshTokens(ctx, userID); err != nil {
		return fmt.Errorf("revoking refresh tokens failed: %w", err)
	}
	return nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}

func (a *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("admin lookup failed: %w", err)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	admin, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.ids.Generate(),
		Name:         "Administrator",
		Email:        email,
		Role:         models.RoleAdmin,
		IsActive:     true,
		PasswordHash: hash,
	})
	if err != nil {
		return fmt.Errorf("admin creation failed: %w", err)
	}

	a.logger.Info().Str("id", admin.ID).Str("email", email).Msg("administrator account created")
	return nil
}

// issuePair signs an access token and stores the hash of a new refresh
// token for user.
func (a *authService) issuePair(ctx context.Context, user models.User) (models.TokenPair, error) {
	access, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Role, a.accessTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.NewOpaqueToken()
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	err = a.tokenRepository.SaveRefreshToken(ctx, models.RefreshToken{
		ID:        a.ids.Generate(),
		UserID:    user.ID,
		TokenHash: utils.HashToken(refresh),
		ExpiresAt: a.now().Add(a.refreshTokenDuration),
	})
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{AccessToken: access.String(), RefreshToken: refresh}, nil
}

// hashPassword returns the bcrypt hash of password.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("password hashing failed: %w", err)
	}
	return string(hash), nil
}
