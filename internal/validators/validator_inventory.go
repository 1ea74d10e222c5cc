// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

const (
	FieldName     = "name"
	FieldStatus   = "status"
	FieldAmounts  = "amounts"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldRange    = "range"
)

// amountAttributes are record attributes that hold money or stock counts.
var amountAttributes = []string{"budget", "price", "quantity"}

type InventoryValidator struct {
}

func NewInventoryValidator() Validator {
	return &InventoryValidator{}
}

func (v *InventoryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return v.validateRecord(ctx, value, fields...)
	case *models.Record:
		return v.validateRecord(ctx, *value, fields...)

	case models.UserInput:
		return v.validateUserInput(ctx, value, fields...)
	case *models.UserInput:
		return v.validateUserInput(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.DateRange:
		return v.validateDateRange(ctx, value, fields...)
	case *models.DateRange:
		return v.validateDateRange(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *InventoryValidator) validateRecord(_ context.Context, rec models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldStatus, FieldAmounts, FieldEmail}
	}

	attrs := map[string]any{}
	if len(rec.Attributes) > 0 {
		if err := json.Unmarshal(rec.Attributes, &attrs); err != nil {
			return fmt.Errorf("%w: %w", ErrCorruptAttributes, err)
		}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(rec.Name) == "" {
				return ErrEmptyName
			}
		case FieldStatus:
			if err := validateStatus(attrs[FieldStatus]); err != nil {
				return err
			}
		case FieldAmounts:
			for _, key := range amountAttributes {
				if err := validateAmount(attrs[key]); err != nil {
					return fmt.Errorf("%s: %w", key, err)
				}
			}
		case FieldEmail:
			// records may leave the email out, but a present one must parse
			if email, ok := attrs[FieldEmail].(string); ok && email != "" && !isEmail(email) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InventoryValidator) validateUserInput(_ context.Context, in models.UserInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(in.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if !isEmail(in.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if in.Password == "" {
				return ErrEmptyPassword
			}
		case FieldRole:
			// an empty role falls back to the default one
			if in.Role != "" && !in.Role.Valid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InventoryValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(c.Email) == "" {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InventoryValidator) validateDateRange(_ context.Context, r models.DateRange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRange}
	}

	for _, f := range fields {
		switch f {
		case FieldRange:
			if !r.Start.IsZero() && !r.End.IsZero() && r.End.Before(r.Start) {
				return ErrInvalidDateRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateStatus accepts a missing status or one of the project statuses.
func validateStatus(v any) error {
	if v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return ErrInvalidStatus
	}
	switch models.ProjectStatus(s) {
	case models.StatusPending, models.StatusInProgress, models.StatusCompleted:
		return nil
	}
	return ErrInvalidStatus
}

func validateAmount(v any) error {
	if v == nil {
		return nil
	}
	n, ok := v.(float64)
	if !ok || n < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func isEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
