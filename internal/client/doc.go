// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command runner behind cmd/client.
//
// An [App] logs in through an [adapter.Client], executes a single command
// against the portal and prints the result: resources as indented JSON,
// mutations as the server's confirmation text.
package client
