// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the data-access layer on top of database/sql.
//
// All statements are built with squirrel and executed with bound
// parameters; no user input is ever interpolated into SQL text.
package store

import (
	"context"

	"github.com/MKhiriev/covid-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository reads and provisions rows of the credential store.
type UserRepository interface {
	// FindUserByUsername returns the user with exactly this username or
	// ErrUserNotFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// CreateUser inserts a user whose Password is already hashed.
	// Returns ErrUserAlreadyExists on a duplicate username.
	CreateUser(ctx context.Context, user models.User) error
}

// StateRepository reads the "state" table and aggregates per-state stats.
type StateRepository interface {
	ListStates(ctx context.Context) ([]models.State, error)
	GetState(ctx context.Context, stateID int64) (models.State, error)
	GetStateStats(ctx context.Context, stateID int64) (models.StateStats, error)
}

// DistrictRepository exposes the full lifecycle of "district" rows.
type DistrictRepository interface {
	// CreateDistrict inserts district and returns the store-assigned id.
	CreateDistrict(ctx context.Context, district models.District) (int64, error)
	GetDistrict(ctx context.Context, districtID int64) (models.District, error)

	// UpdateDistrict overwrites every field of the row with
	// district.DistrictID and returns the number of affected rows.
	UpdateDistrict(ctx context.Context, district models.District) (int64, error)

	// DeleteDistrict removes the row and returns the number of affected rows.
	DeleteDistrict(ctx context.Context, districtID int64) (int64, error)
}

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
