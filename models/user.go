// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents a row of the credential store ("user" table).
// It doubles as the login request payload: on the way in Password holds the
// plain-text secret, when read from the store it holds the bcrypt hash.
type User struct {
	// Username is the unique identifier the user logs in with.
	Username string `json:"username" validate:"required"`

	// Password is either the plain-text password supplied on login or the
	// stored bcrypt hash. It must never be logged or echoed back.
	Password string `json:"password" validate:"required"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "user"
}
