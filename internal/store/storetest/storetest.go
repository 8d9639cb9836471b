// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package storetest provides in-memory SQLite stores for tests that need a
// real database behind the repositories.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/covid-portal/internal/config"
	"github.com/MKhiriev/covid-portal/internal/logger"
	"github.com/MKhiriev/covid-portal/internal/store"
	"github.com/MKhiriev/covid-portal/models"
)

// Schema creates the three tables the repositories read and write.
const Schema = `
CREATE TABLE "user" (
	username TEXT PRIMARY KEY,
	password TEXT NOT NULL
);

CREATE TABLE state (
	state_id   INTEGER PRIMARY KEY,
	state_name TEXT    NOT NULL,
	population INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE district (
	district_id   INTEGER PRIMARY KEY AUTOINCREMENT,
	district_name TEXT    NOT NULL,
	state_id      INTEGER NOT NULL REFERENCES state (state_id),
	cases         INTEGER NOT NULL DEFAULT 0,
	cured         INTEGER NOT NULL DEFAULT 0,
	active        INTEGER NOT NULL DEFAULT 0,
	deaths        INTEGER NOT NULL DEFAULT 0
);
`

// DSN opens a private in-memory database with foreign keys enforced.
const DSN = "file::memory:?_foreign_keys=on"

// NewSQLite opens an in-memory SQLite database, applies [Schema] and returns
// the storages built on it together with the raw handle. The database is
// closed when the test ends.
func NewSQLite(t testing.TB) (*store.Storages, *store.DB) {
	t.Helper()

	ctx := context.Background()
	db, err := store.NewConnectSQLite(ctx, config.DB{Driver: config.DriverSQLite, DSN: DSN}, logger.Nop())
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, Schema)
	require.NoError(t, err)

	storages := store.NewStoragesFromDB(db, logger.Nop())
	t.Cleanup(func() { _ = storages.Close() })

	return storages, db
}

// SeedStates inserts states as-is.
func SeedStates(t testing.TB, db *store.DB, states ...models.State) {
	t.Helper()

	for _, s := range states {
		_, err := db.ExecContext(context.Background(),
			`INSERT INTO state (state_id, state_name, population) VALUES (?, ?, ?)`,
			s.StateID, s.StateName, s.Population)
		require.NoError(t, err)
	}
}

// SeedDistricts inserts districts and returns their assigned ids in order.
func SeedDistricts(t testing.TB, storages *store.Storages, districts ...models.District) []int64 {
	t.Helper()

	ids := make([]int64, 0, len(districts))
	for _, d := range districts {
		id, err := storages.DistrictRepository.CreateDistrict(context.Background(), d)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}
