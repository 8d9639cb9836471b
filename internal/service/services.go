// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/covid-portal/internal/config"
	"github.com/MKhiriev/covid-portal/internal/logger"
	"github.com/MKhiriev/covid-portal/internal/store"
)

type Services struct {
	AuthService     AuthService
	StateService    StateService
	DistrictService DistrictService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	districtService := NewDistrictValidationService().
		Wrap(NewDistrictService(storages.DistrictRepository, logger))

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		StateService:    NewStateService(storages.StateRepository, logger),
		DistrictService: districtService,
	}
}
