// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the covid portal.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging, and response compression are handled in
// this package before requests are delegated to the service layer. Error
// bodies are plain text, successful reads are JSON.
package http
