// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path matches a registered route but the method does
// not. This handler answers 404 instead, so a known path with an unknown
// method looks exactly like an unknown path.
//
// Matching goes through [chi.Mux.Match], so parameterised patterns such as
// /districts/{districtId}/ are expanded. If the method is in fact routable
// the request is forwarded to the router.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			http.NotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
