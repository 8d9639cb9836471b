// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/covid-portal/internal/logger"
	"github.com/MKhiriev/covid-portal/internal/service"
	"github.com/MKhiriev/covid-portal/internal/store"
	"github.com/MKhiriev/covid-portal/internal/utils"
)

// Plain-text bodies sent to API clients.
const (
	msgInvalidJSON       = "Invalid JSON was passed"
	msgInvalidUser       = "Invalid user"
	msgInvalidPassword   = "Invalid password"
	msgInvalidToken      = "Invalid JWT Token"
	msgStateNotFound     = "State not found"
	msgDistrictNotFound  = "District not found"
	msgUnknownState      = "Unknown state"
	msgInvalidStateID    = "Invalid state id"
	msgInvalidDistrictID = "Invalid district id"

	msgDistrictAdded   = "District Successfully Added"
	msgDistrictUpdated = "District Details Updated"
	msgDistrictRemoved = "District Removed"
)

// errorResponse is what a mapped error turns into. An empty message means
// the error text itself is sent.
type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, ""},
	service.ErrInvalidUser:             {http.StatusBadRequest, msgInvalidUser},
	service.ErrInvalidPassword:         {http.StatusBadRequest, msgInvalidPassword},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, msgInvalidToken},

	store.ErrStateNotFound:    {http.StatusNotFound, msgStateNotFound},
	store.ErrDistrictNotFound: {http.StatusNotFound, msgDistrictNotFound},
	store.ErrUnknownState:     {http.StatusBadRequest, msgUnknownState},
}

// statusFromError returns the status and body for err. Unmapped errors,
// store failures included, become 500 with the standard status text.
func statusFromError(err error) (int, string) {
	for target, resp := range errorStatusMap {
		if !errors.Is(err, target) {
			continue
		}
		if resp.message == "" {
			return resp.status, err.Error()
		}
		return resp.status, resp.message
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err on the request logger and sends its mapped response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteText(w, message, status); writeErr != nil {
		log.Err(writeErr).Msg("failed to write error response")
	}
}
