// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the covid portal.
//
// It owns the server lifecycle: startup, signal handling, and graceful
// shutdown on SIGINT, SIGTERM or SIGQUIT.
package server
