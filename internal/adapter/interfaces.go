// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the covid portal REST API.
//
// The primary abstraction is [Client]; [NewHTTPClient] returns the resty
// backed implementation. Non-2xx responses are mapped to the sentinel errors
// in errors.go so callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/covid-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client talks to a running portal. Every method except Login needs a token
// obtained by a prior Login or set with SetToken.
type Client interface {
	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token or "".
	Token() string

	// Login exchanges credentials for a token, stores it and returns it.
	Login(ctx context.Context, username, password string) (string, error)

	ListStates(ctx context.Context) ([]models.State, error)
	GetState(ctx context.Context, stateID int64) (models.State, error)
	GetStateStats(ctx context.Context, stateID int64) (models.StateStats, error)

	// CreateDistrict, UpdateDistrict and DeleteDistrict return the
	// confirmation text sent by the server.
	CreateDistrict(ctx context.Context, district models.District) (string, error)
	GetDistrict(ctx context.Context, districtID int64) (models.District, error)
	UpdateDistrict(ctx context.Context, districtID int64, district models.District) (string, error)
	DeleteDistrict(ctx context.Context, districtID int64) (string, error)
}
