// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the salted bcrypt hash of password computed with
// bcrypt.DefaultCost. The result is what the credential store keeps in
// user.password.
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret")
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword compares a plain-text password with a stored bcrypt hash.
//
// Returns nil on match, bcrypt.ErrMismatchedHashAndPassword on mismatch, or
// another bcrypt error when hash is not a valid bcrypt hash.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
