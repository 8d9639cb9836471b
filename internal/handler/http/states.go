// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/covid-portal/internal/logger"
	"github.com/MKhiriev/covid-portal/internal/utils"
)

func (h *Handler) listStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.services.StateService.ListStates(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, states, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write states")
	}
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	stateID, err := pathID(r, paramStateID)
	if err != nil {
		logger.FromRequest(r).Info().Err(err).Send()
		utils.WriteText(w, msgInvalidStateID, http.StatusBadRequest)
		return
	}

	state, err := h.services.StateService.GetState(r.Context(), stateID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, state, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write state")
	}
}

func (h *Handler) getStateStats(w http.ResponseWriter, r *http.Request) {
	stateID, err := pathID(r, paramStateID)
	if err != nil {
		logger.FromRequest(r).Info().Err(err).Send()
		utils.WriteText(w, msgInvalidStateID, http.StatusBadRequest)
		return
	}

	stats, err := h.services.StateService.GetStateStats(r.Context(), stateID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, stats, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write state stats")
	}
}
