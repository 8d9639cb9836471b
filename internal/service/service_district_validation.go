// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/covid-portal/internal/validators"
	"github.com/MKhiriev/covid-portal/models"
)

// DistrictValidationService rejects malformed district payloads and ids
// before they reach the wrapped DistrictService.
type DistrictValidationService struct {
	inner     DistrictService
	validator validators.Validator
}

func NewDistrictValidationService() DistrictServiceWrapper {
	return &DistrictValidationService{
		validator: validators.NewStructValidator(),
	}
}

func (v *DistrictValidationService) CreateDistrict(ctx context.Context, district models.District) (int64, error) {
	if err := v.validator.Validate(ctx, district); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateDistrict(ctx, district)
}

func (v *DistrictValidationService) GetDistrict(ctx context.Context, districtID int64) (models.District, error) {
	if districtID <= 0 {
		return models.District{}, fmt.Errorf("%w: district id must be positive", ErrInvalidDataProvided)
	}

	return v.inner.GetDistrict(ctx, districtID)
}

func (v *DistrictValidationService) UpdateDistrict(ctx context.Context, district models.District) (int64, error) {
	if district.DistrictID <= 0 {
		return 0, fmt.Errorf("%w: district id must be positive", ErrInvalidDataProvided)
	}
	if err := v.validator.Validate(ctx, district); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateDistrict(ctx, district)
}

func (v *DistrictValidationService) DeleteDistrict(ctx context.Context, districtID int64) (int64, error) {
	if districtID <= 0 {
		return 0, fmt.Errorf("%w: district id must be positive", ErrInvalidDataProvided)
	}

	return v.inner.DeleteDistrict(ctx, districtID)
}

func (v *DistrictValidationService) Wrap(wrapped DistrictService) DistrictService {
	v.inner = wrapped
	return v
}
