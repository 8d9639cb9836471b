// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/covid-portal/internal/logger"
	"github.com/MKhiriev/covid-portal/models"
)

// userRepository is the database/sql implementation of [UserRepository]
// over the "user" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserByUsername retrieves the user whose username matches exactly.
//
// Error handling:
//   - no row → [ErrUserNotFound].
//   - query failure → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByUsernameQuery(r.db.builder, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("failed to build query")
		return models.User{}, err
	}

	var foundUser models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&foundUser.Username, &foundUser.Password)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return foundUser, nil
}

// CreateUser inserts a user whose password is already a bcrypt hash.
//
// Error handling:
//   - unique/primary key violation → [ErrUserAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.classify(err) == UniqueViolation {
			return ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
