// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL implementation of [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns the stored row. A duplicate email
// yields [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert(tableUsers).
		Columns("id", "name", "email", "password_hash", "role", "is_active").
		Values(user.ID, user.Name, user.Email, user.PasswordHash, string(user.Role), user.IsActive).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Msg("error creating user")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"email": email})
}

func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"id": id})
}

func (r *userRepository) findUser(ctx context.Context, where sq.Sqlizer) (models.User, error) {
	query, args, err := psql.Select(userColumns...).From(tableUsers).Where(where).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		found, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	return found, nil
}

// ListUsers returns one page of users and the total number of matches.
func (r *userRepository) ListUsers(ctx context.Context, params models.ListParams) ([]models.User, int, error) {
	where := userFilters(params)

	total, err := r.db.count(ctx, tableUsers, where)
	if err != nil {
		return nil, 0, err
	}

	query, args, err := psql.Select(userColumns...).From(tableUsers).Where(where).
		OrderBy(orderBy(userSortColumns, false, params.Sort, params.Order)).
		Limit(uint64(params.Limit)).
		Offset(uint64(params.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var users []models.User
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		users = users[:0]
		for rows.Next() {
			u, err := scanUser(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			users = append(users, u)
		}
		return rows.Err()
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing users")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return users, total, nil
}

// UpdateUser overwrites name, email, role and is_active. The password hash is
// changed only when user.PasswordHash is set.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	b := psql.Update(tableUsers).
		Set("name", user.Name).
		Set("email", user.Email).
		Set("role", string(user.Role)).
		Set("is_active", user.IsActive).
		Set("updated_at", time.Now().UTC())
	if user.PasswordHash != "" {
		b = b.Set("password_hash", user.PasswordHash)
	}

	query, args, err := b.Where(sq.Eq{"id": user.ID}).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case postgresError(err) == pgerrcode.UniqueViolation:
		return models.User{}, ErrEmailAlreadyExists
	case err != nil:
		logger.FromContext(ctx).Err(err).Msg("error updating user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	return updated, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	query, args, err := psql.Delete(tableUsers).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.execAffecting(ctx, ErrNoUserWasFound, query, args...)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	var role string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return models.User{}, err
	}
	u.Role = models.Role(role)
	return u, nil
}
