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

type stateService struct {
	stateRepository store.StateRepository
	logger          *logger.Logger
}

func NewStateService(stateRepository store.StateRepository, logger *logger.Logger) StateService {
	return &stateService{
		stateRepository: stateRepository,
		logger:          logger,
	}
}

func (s *stateService) ListStates(ctx context.Context) ([]models.State, error) {
	states, err := s.stateRepository.ListStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing states: %w", err)
	}

	return states, nil
}

func (s *stateService) GetState(ctx context.Context, stateID int64) (models.State, error) {
	state, err := s.stateRepository.GetState(ctx, stateID)
	if err != nil {
		return models.State{}, fmt.Errorf("error getting state %d: %w", stateID, err)
	}

	return state, nil
}

// GetStateStats does not check that the state exists: an unknown id has no
// districts and reports zeros.
func (s *stateService) GetStateStats(ctx context.Context, stateID int64) (models.StateStats, error) {
	stats, err := s.stateRepository.GetStateStats(ctx, stateID)
	if err != nil {
		return models.StateStats{}, fmt.Errorf("error getting stats of state %d: %w", stateID, err)
	}

	return stats, nil
}
