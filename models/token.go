// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by every bearer token.
//
// Username is the only claim the application relies on. The registered
// claims (sub, iat and optionally iss, exp) are filled in by the issuer.
type Claims struct {
	Username string `json:"username"`

	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Username is the value of the "username" claim.
	Username string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
