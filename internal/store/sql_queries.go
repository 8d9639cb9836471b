// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/covid-portal/models"
)

// "user" is reserved in PostgreSQL and has to be quoted; the quoted form is
// accepted by SQLite as well.
const userTable = `"user"`

const (
	stateTable    = "state"
	districtTable = "district"
)

var (
	userColumns     = []string{"username", "password"}
	stateColumns    = []string{"state_id", "state_name", "population"}
	districtColumns = []string{"district_id", "district_name", "state_id", "cases", "cured", "active", "deaths"}
)

// Aggregates are cast to BIGINT so both drivers scan them into int64, and
// wrapped in COALESCE so a state without districts yields zeros.
var stateStatsColumns = []string{
	"CAST(COALESCE(SUM(cases), 0) AS BIGINT) AS totalCases",
	"CAST(COALESCE(SUM(cured), 0) AS BIGINT) AS totalCured",
	"CAST(COALESCE(SUM(active), 0) AS BIGINT) AS totalActive",
	"CAST(COALESCE(SUM(deaths), 0) AS BIGINT) AS totalDeaths",
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return toSQL(b.Select(userColumns...).
		From(userTable).
		Where(sq.Eq{"username": username}))
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return toSQL(b.Insert(userTable).
		Columns(userColumns...).
		Values(user.Username, user.Password))
}

func buildListStatesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return toSQL(b.Select(stateColumns...).
		From(stateTable).
		OrderBy("state_id"))
}

func buildGetStateQuery(b sq.StatementBuilderType, stateID int64) (string, []any, error) {
	return toSQL(b.Select(stateColumns...).
		From(stateTable).
		Where(sq.Eq{"state_id": stateID}))
}

func buildGetStateStatsQuery(b sq.StatementBuilderType, stateID int64) (string, []any, error) {
	return toSQL(b.Select(stateStatsColumns...).
		From(districtTable).
		Where(sq.Eq{"state_id": stateID}))
}

func buildCreateDistrictQuery(b sq.StatementBuilderType, d models.District) (string, []any, error) {
	return toSQL(b.Insert(districtTable).
		Columns(districtColumns[1:]...).
		Values(d.DistrictName, d.StateID, d.Cases, d.Cured, d.Active, d.Deaths).
		Suffix("RETURNING district_id"))
}

func buildGetDistrictQuery(b sq.StatementBuilderType, districtID int64) (string, []any, error) {
	return toSQL(b.Select(districtColumns...).
		From(districtTable).
		Where(sq.Eq{"district_id": districtID}))
}

func buildUpdateDistrictQuery(b sq.StatementBuilderType, d models.District) (string, []any, error) {
	return toSQL(b.Update(districtTable).
		Set("district_name", d.DistrictName).
		Set("state_id", d.StateID).
		Set("cases", d.Cases).
		Set("cured", d.Cured).
		Set("active", d.Active).
		Set("deaths", d.Deaths).
		Where(sq.Eq{"district_id": d.DistrictID}))
}

func buildDeleteDistrictQuery(b sq.StatementBuilderType, districtID int64) (string, []any, error) {
	return toSQL(b.Delete(districtTable).
		Where(sq.Eq{"district_id": districtID}))
}

func toSQL(s sq.Sqlizer) (string, []any, error) {
	query, args, err := s.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
