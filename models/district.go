// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// District is a row of the "district" table mapped to its API representation.
//
// The same type is used as the create/update request payload. DistrictID is
// ignored in payloads: on create the store assigns it, on update it comes
// from the path.
type District struct {
	// DistrictID is assigned by the store on creation.
	DistrictID int64 `json:"districtId"`

	DistrictName string `json:"districtName" validate:"required"`

	// StateID references state.state_id.
	StateID int64 `json:"stateId" validate:"gt=0"`

	Cases  int64 `json:"cases" validate:"gte=0"`
	Cured  int64 `json:"cured" validate:"gte=0"`
	Active int64 `json:"active" validate:"gte=0"`
	Deaths int64 `json:"deaths" validate:"gte=0"`
}

// TableName returns the name of the database table
// associated with the District model.
func (d District) TableName() string {
	return "district"
}
