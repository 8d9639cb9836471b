// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNoCommand       = errors.New("no command given")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrWrongArgsNumber = errors.New("wrong number of arguments")
	ErrInvalidID       = errors.New("id must be a positive integer")
	ErrInvalidPayload  = errors.New("invalid district JSON")
)
