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

// stateRepository is the database/sql implementation of [StateRepository].
type stateRepository struct {
	*DB
	logger *logger.Logger
}

// NewStateRepository constructs a [StateRepository] backed by db.
func NewStateRepository(db *DB, logger *logger.Logger) StateRepository {
	logger.Debug().Msg("creating state repository")
	return &stateRepository{
		DB:     db,
		logger: logger,
	}
}

// ListStates returns every state ordered by state_id ascending.
func (s *stateRepository) ListStates(ctx context.Context) ([]models.State, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListStatesQuery(s.builder)
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.ListStates").Msg("failed to build query")
		return nil, err
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.ListStates").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	states := make([]models.State, 0, 36)
	for rows.Next() {
		var state models.State
		if err = rows.Scan(&state.StateID, &state.StateName, &state.Population); err != nil {
			log.Err(err).Str("func", "*stateRepository.ListStates").Msg("failed to scan state row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		states = append(states, state)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*stateRepository.ListStates").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return states, nil
}

// GetState returns the state with stateID or [ErrStateNotFound].
func (s *stateRepository) GetState(ctx context.Context, stateID int64) (models.State, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetStateQuery(s.builder, stateID)
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.GetState").Msg("failed to build query")
		return models.State{}, err
	}

	var state models.State
	err = s.QueryRowContext(ctx, query, args...).Scan(&state.StateID, &state.StateName, &state.Population)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.State{}, ErrStateNotFound
	case err != nil:
		log.Err(err).Str("func", "*stateRepository.GetState").Int64("state_id", stateID).Msg("failed to get state")
		return models.State{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return state, nil
}

// GetStateStats sums cases, cured, active and deaths over all districts of
// stateID. A state without districts, or an unknown state id, yields zeros.
func (s *stateRepository) GetStateStats(ctx context.Context, stateID int64) (models.StateStats, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetStateStatsQuery(s.builder, stateID)
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.GetStateStats").Msg("failed to build query")
		return models.StateStats{}, err
	}

	var stats models.StateStats
	err = s.QueryRowContext(ctx, query, args...).
		Scan(&stats.TotalCases, &stats.TotalCured, &stats.TotalActive, &stats.TotalDeaths)
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.GetStateStats").Int64("state_id", stateID).Msg("failed to get state stats")
		return models.StateStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return stats, nil
}
