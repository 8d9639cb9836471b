// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the driver-independent class of a failed database
// operation, returned by [ErrorClassificator.Classify]. Repositories turn
// the class into their own sentinel errors.
type ErrorClassification int

const (
	// Unclassified covers nil errors, non-driver errors and every driver
	// code not listed below.
	Unclassified ErrorClassification = iota

	// ForeignKeyViolation means a referenced row does not exist
	// (district.state_id pointing at a missing state).
	ForeignKeyViolation

	// UniqueViolation means a unique or primary key constraint rejected
	// the row (a username that is already provisioned).
	UniqueViolation
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ForeignKeyViolation: // 23503
		return ForeignKeyViolation
	case pgerrcode.UniqueViolation: // 23505
		return UniqueViolation
	}

	return Unclassified
}
