// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/internal/validators"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type userService struct {
	userRepository  store.UserRepository
	tokenRepository store.RefreshTokenRepository
	ids             *utils.UUIDGenerator
	validator       validators.Validator
	logger          *logger.Logger
}

func NewUserService(users store.UserRepository, tokens store.RefreshTokenRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository:  users,
		tokenRepository: tokens,
		ids:             utils.NewUUIDGenerator(),
		validator:       validators.NewInventoryValidator(),
		logger:          logger,
	}
}

func (s *userService) List(ctx context.Context, params models.ListParams) (models.ListResult[models.User], error) {
	if role := params.Filters["role"]; role != "" && !models.Role(role).Valid() {
		return models.ListResult[models.User]{}, ErrInvalidRole
	}

	users, total, err := s.userRepository.ListUsers(ctx, params)
	if err != nil {
		return models.ListResult[models.User]{}, err
	}
	if users == nil {
		users = []models.User{}
	}
	return models.ListResult[models.User]{
		Items:      users,
		Pagination: models.NewPagination(total, params.Page, params.Limit),
	}, nil
}

func (s *userService) Get(ctx context.Context, id string) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, id)
}

func (s *userService) Create(ctx context.Context, in models.UserInput) (models.User, error) {
	in = normalizeUserInput(in)
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.User{}, validationError(err)
	}
	if in.Role == "" {
		in.Role = models.RoleUser
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           s.ids.Generate(),
		Name:         in.Name,
		Email:        in.Email,
		Role:         in.Role,
		IsActive:     in.IsActive == nil || *in.IsActive,
		PasswordHash: hash,
	}
	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("email", in.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}
	return created, nil
}

func (s *userService) Update(ctx context.Context, id string, in models.UserInput) (models.User, error) {
	in = normalizeUserInput(in)
	if err := s.validator.Validate(ctx, in, updatedUserFields(in)...); err != nil {
		return models.User{}, validationError(err)
	}

	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Role != "" {
		user.Role = in.Role
	}
	deactivated := false
	if in.IsActive != nil {
		deactivated = user.IsActive && !*in.IsActive
		user.IsActive = *in.IsActive
	}
	// an empty hash keeps the stored password
	user.PasswordHash = ""
	if in.Password != "" {
		if user.PasswordHash, err = hashPassword(in.Password); err != nil {
			return models.User{}, err
		}
	}

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	if deactivated || in.Password != "" {
		if err = s.tokenRepository.DeleteUserRefreshTokens(ctx, id); err != nil {
			logger.FromContext(ctx).Err(err).Str("id", id).Msg("revoking refresh tokens failed")
		}
	}
	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	return s.userRepository.DeleteUser(ctx, id)
}

func normalizeUserInput(in models.UserInput) models.UserInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	return in
}

// updatedUserFields names the fields a partial update carries. Empty
// fields keep their stored values and are not validated.
func updatedUserFields(in models.UserInput) []string {
	fields := []string{validators.FieldRole}
	if in.Email != "" {
		fields = append(fields, validators.FieldEmail)
	}
	return fields
}
