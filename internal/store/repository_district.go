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

// districtRepository is the database/sql implementation of
// [DistrictRepository].
type districtRepository struct {
	*DB
	logger *logger.Logger
}

// NewDistrictRepository constructs a [DistrictRepository] backed by db.
func NewDistrictRepository(db *DB, logger *logger.Logger) DistrictRepository {
	logger.Debug().Msg("creating district repository")
	return &districtRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateDistrict inserts a district and returns the id assigned by the store.
// The incoming DistrictID is ignored.
func (d *districtRepository) CreateDistrict(ctx context.Context, district models.District) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateDistrictQuery(d.builder, district)
	if err != nil {
		log.Err(err).Str("func", "*districtRepository.CreateDistrict").Msg("failed to build query")
		return 0, err
	}

	var districtID int64
	if err = d.QueryRowContext(ctx, query, args...).Scan(&districtID); err != nil {
		return 0, d.statementError(ctx, "*districtRepository.CreateDistrict", err)
	}

	return districtID, nil
}

// GetDistrict returns the district with districtID or [ErrDistrictNotFound].
func (d *districtRepository) GetDistrict(ctx context.Context, districtID int64) (models.District, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetDistrictQuery(d.builder, districtID)
	if err != nil {
		log.Err(err).Str("func", "*districtRepository.GetDistrict").Msg("failed to build query")
		return models.District{}, err
	}

	var district models.District
	err = d.QueryRowContext(ctx, query, args...).Scan(
		&district.DistrictID,
		&district.DistrictName,
		&district.StateID,
		&district.Cases,
		&district.Cured,
		&district.Active,
		&district.Deaths,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.District{}, ErrDistrictNotFound
	case err != nil:
		log.Err(err).Str("func", "*districtRepository.GetDistrict").Int64("district_id", districtID).Msg("failed to get district")
		return models.District{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return district, nil
}

// UpdateDistrict overwrites all fields of the district with
// district.DistrictID. Zero affected rows is not an error.
func (d *districtRepository) UpdateDistrict(ctx context.Context, district models.District) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateDistrictQuery(d.builder, district)
	if err != nil {
		log.Err(err).Str("func", "*districtRepository.UpdateDistrict").Msg("failed to build query")
		return 0, err
	}

	result, err := d.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, d.statementError(ctx, "*districtRepository.UpdateDistrict", err)
	}

	return rowsAffected(ctx, result), nil
}

// DeleteDistrict removes the district with districtID. Zero affected rows
// is not an error.
func (d *districtRepository) DeleteDistrict(ctx context.Context, districtID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDistrictQuery(d.builder, districtID)
	if err != nil {
		log.Err(err).Str("func", "*districtRepository.DeleteDistrict").Msg("failed to build query")
		return 0, err
	}

	result, err := d.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, d.statementError(ctx, "*districtRepository.DeleteDistrict", err)
	}

	return rowsAffected(ctx, result), nil
}

// statementError turns a failed insert/update into [ErrUnknownState] when the
// store rejected the state reference, or a wrapped [ErrExecutingStatement].
func (d *districtRepository) statementError(ctx context.Context, funcName string, err error) error {
	if d.classify(err) == ForeignKeyViolation {
		return ErrUnknownState
	}

	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to execute statement")
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

// rowsAffected reports -1 when the driver cannot tell.
func rowsAffected(ctx context.Context, result sql.Result) int64 {
	n, err := result.RowsAffected()
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("rows affected is not available")
		return -1
	}
	return n
}
