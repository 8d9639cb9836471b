// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	ErrEmptyAddress = errors.New("empty server address")
	ErrInvalidToken = errors.New("server returned no token")
)

// StatusError is returned for non-2xx statuses without a dedicated sentinel.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return e.Body
}
