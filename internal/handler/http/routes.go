// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(gzip.DefaultCompression))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Post("/login/", h.login)

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/states/", h.listStates)
		r.Get("/states/{stateId}/", h.getState)
		r.Get("/states/{stateId}/stats/", h.getStateStats)

		r.Post("/districts/", h.createDistrict)
		r.Get("/districts/{districtId}/", h.getDistrict)
		r.Put("/districts/{districtId}/", h.updateDistrict)
		r.Delete("/districts/{districtId}/", h.deleteDistrict)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
