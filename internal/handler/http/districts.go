// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/covid-portal/internal/logger"
	"github.com/MKhiriev/covid-portal/internal/utils"
	"github.com/MKhiriev/covid-portal/models"
)

func (h *Handler) createDistrict(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var district models.District
	if err := json.NewDecoder(r.Body).Decode(&district); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteText(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}
	district.DistrictID = 0

	if _, err := h.services.DistrictService.CreateDistrict(r.Context(), district); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteText(w, msgDistrictAdded, http.StatusOK)
}

func (h *Handler) getDistrict(w http.ResponseWriter, r *http.Request) {
	districtID, err := pathID(r, paramDistrictID)
	if err != nil {
		logger.FromRequest(r).Info().Err(err).Send()
		utils.WriteText(w, msgInvalidDistrictID, http.StatusBadRequest)
		return
	}

	district, err := h.services.DistrictService.GetDistrict(r.Context(), districtID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, district, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write district")
	}
}

// updateDistrict answers 200 even when no district has the id.
func (h *Handler) updateDistrict(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	districtID, err := pathID(r, paramDistrictID)
	if err != nil {
		log.Info().Err(err).Send()
		utils.WriteText(w, msgInvalidDistrictID, http.StatusBadRequest)
		return
	}

	var district models.District
	if err = json.NewDecoder(r.Body).Decode(&district); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteText(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}
	district.DistrictID = districtID

	if _, err = h.services.DistrictService.UpdateDistrict(r.Context(), district); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteText(w, msgDistrictUpdated, http.StatusOK)
}

// deleteDistrict answers 200 even when no district has the id.
func (h *Handler) deleteDistrict(w http.ResponseWriter, r *http.Request) {
	districtID, err := pathID(r, paramDistrictID)
	if err != nil {
		logger.FromRequest(r).Info().Err(err).Send()
		utils.WriteText(w, msgInvalidDistrictID, http.StatusBadRequest)
		return
	}

	if _, err = h.services.DistrictService.DeleteDistrict(r.Context(), districtID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteText(w, msgDistrictRemoved, http.StatusOK)
}
