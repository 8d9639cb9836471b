// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user has the requested username.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when provisioning a username that is
	// already present in the credential store.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrStateNotFound is returned when no state has the requested id.
	ErrStateNotFound = errors.New("state not found")

	// ErrDistrictNotFound is returned when no district has the requested id.
	ErrDistrictNotFound = errors.New("district not found")

	// ErrUnknownState is returned when a district insert or update references
	// a state that does not exist and the store enforces the foreign key.
	ErrUnknownState = errors.New("district references unknown state")

	// ErrUnsupportedDriver is returned by NewConnect for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
