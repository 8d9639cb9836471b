// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run logs in with the given credentials and executes args[0] with
	// args[1:] as its arguments.
	Run(ctx context.Context, username, password string, args []string) error
}
