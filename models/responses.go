// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginResponse is the body returned by a successful POST /login/.
type LoginResponse struct {
	// JWTToken is the signed bearer token to be sent as
	// "Authorization: Bearer <token>" on every protected request.
	JWTToken string `json:"jwtToken"`
}
