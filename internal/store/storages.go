// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/covid-portal/internal/config"
	"github.com/MKhiriev/covid-portal/internal/logger"
)

// Storages bundles every repository built on one shared [DB] handle.
type Storages struct {
	UserRepository     UserRepository
	StateRepository    StateRepository
	DistrictRepository DistrictRepository

	db *DB
}

// NewStorages connects to the database described by cfg and builds all
// repositories on top of the connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.DB.Driver).Msg("creating storages...")

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds all repositories on an already opened handle.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		StateRepository:    NewStateRepository(db, log),
		DistrictRepository: NewDistrictRepository(db, log),
		db:                 db,
	}
}

// Close releases the underlying database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
