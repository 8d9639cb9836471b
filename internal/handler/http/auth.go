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

// login exchanges a username and password for a bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteText(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteText(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Str("username", foundUser.Username).Msg("user successfully logged in")

	if _, err = utils.WriteJSON(w, models.LoginResponse{JWTToken: token.SignedString}, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write login response")
	}
}
