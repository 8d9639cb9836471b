// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/covid-portal/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyUsernameClaim is returned when a token verifies but carries no
// "username" claim.
var ErrEmptyUsernameClaim = errors.New("empty username claim")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for username.
//
// The token carries the claims:
//   - username: the authenticated user name
//   - sub:      the same user name
//   - iat:      the current time
//   - iss:      issuer, only when issuer is non-empty
//   - exp:      now + tokenDuration, only when tokenDuration is positive
//
// username and signKey are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("alice", "", 0, "secret")
func GenerateJWTToken(username, issuer string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if username == "" || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  username,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if tokenDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Username: username}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// the "username" claim.
//
// Validation includes:
//   - signing method must be HS256
//   - signature verification using tokenSignKey
//   - issuer (iss) check, only when tokenIssuer is non-empty
//   - expiration (exp) check, only when the token carries exp
//   - presence of a non-empty username claim
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "")
//	if err != nil {
//	    // handle invalid token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Username == "" {
		return models.Token{}, ErrEmptyUsernameClaim
	}

	return models.Token{Token: token, SignedString: tokenString, Username: claims.Username}, nil
}
