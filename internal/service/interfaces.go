// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business layer between HTTP handlers and the
// store: credential checks and token lifecycle, read access to states and
// their aggregated statistics, and validated district CRUD.
package service

import (
	"context"

	"github.com/MKhiriev/covid-portal/models"
)

type AuthService interface {
	// Login checks username and plain-text password against the credential
	// store and returns the stored user.
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type StateService interface {
	ListStates(ctx context.Context) ([]models.State, error)
	GetState(ctx context.Context, stateID int64) (models.State, error)
	GetStateStats(ctx context.Context, stateID int64) (models.StateStats, error)
}

type DistrictService interface {
	CreateDistrict(ctx context.Context, district models.District) (int64, error)
	GetDistrict(ctx context.Context, districtID int64) (models.District, error)
	UpdateDistrict(ctx context.Context, district models.District) (int64, error)
	DeleteDistrict(ctx context.Context, districtID int64) (int64, error)
}

// DistrictServiceWrapper defines middleware composition for DistrictService.
// Implementations wrap an existing DistrictService to add behavior such as
// validation.
type DistrictServiceWrapper interface {
	Wrap(DistrictService) DistrictService
}
