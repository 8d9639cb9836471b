// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/covid-portal/internal/logger"
	"github.com/MKhiriev/covid-portal/internal/store"
	"github.com/MKhiriev/covid-portal/models"
)

type districtService struct {
	districtRepository store.DistrictRepository
	logger             *logger.Logger
}

func NewDistrictService(districtRepository store.DistrictRepository, logger *logger.Logger) DistrictService {
	return &districtService{
		districtRepository: districtRepository,
		logger:             logger,
	}
}

func (d *districtService) CreateDistrict(ctx context.Context, district models.District) (int64, error) {
	districtID, err := d.districtRepository.CreateDistrict(ctx, district)
	if err != nil {
		return 0, fmt.Errorf("error creating district: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("district_id", districtID).Msg("district created")
	return districtID, nil
}

func (d *districtService) GetDistrict(ctx context.Context, districtID int64) (models.District, error) {
	district, err := d.districtRepository.GetDistrict(ctx, districtID)
	if err != nil {
		return models.District{}, fmt.Errorf("error getting district %d: %w", districtID, err)
	}

	return district, nil
}

// UpdateDistrict returns the number of updated rows; zero means no district
// had the id, which is not an error.
func (d *districtService) UpdateDistrict(ctx context.Context, district models.District) (int64, error) {
	updated, err := d.districtRepository.UpdateDistrict(ctx, district)
	if err != nil {
		return 0, fmt.Errorf("error updating district %d: %w", district.DistrictID, err)
	}

	logger.FromContext(ctx).Info().
		Int64("district_id", district.DistrictID).
		Int64("rows_affected", updated).
		Msg("district update executed")
	return updated, nil
}

// DeleteDistrict returns the number of removed rows; zero is not an error.
func (d *districtService) DeleteDistrict(ctx context.Context, districtID int64) (int64, error) {
	deleted, err := d.districtRepository.DeleteDistrict(ctx, districtID)
	if err != nil {
		return 0, fmt.Errorf("error deleting district %d: %w", districtID, err)
	}

	logger.FromContext(ctx).Info().
		Int64("district_id", districtID).
		Int64("rows_affected", deleted).
		Msg("district delete executed")
	return deleted, nil
}
