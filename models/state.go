// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// State is a row of the "state" table mapped to its API representation.
type State struct {
	StateID    int64  `json:"stateId"`
	StateName  string `json:"stateName"`
	Population int64  `json:"population"`
}

// TableName returns the name of the database table
// associated with the State model.
func (s State) TableName() string {
	return "state"
}

// StateStats holds the column-wise sums of all districts of one state.
type StateStats struct {
	TotalCases  int64 `json:"totalCases"`
	TotalCured  int64 `json:"totalCured"`
	TotalActive int64 `json:"totalActive"`
	TotalDeaths int64 `json:"totalDeaths"`
}
