// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/joke-moderator/internal/logger"
	"github.com/MKhiriev/joke-moderator/internal/utils"
	"github.com/MKhiriev/joke-moderator/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeDecodeError(w, r, err)
		return
	}

	if err := h.services.AuthService.Login(ctx, credentials); err != nil {
		switch statusFromError(err) {
		case http.StatusUnauthorized:
			log.Err(err).Msg("wrong email/password")
			utils.WriteMessage(w, msgInvalidCredentials, http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, credentials.Email)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	log.Info().Str("email", token.Claims.Email).Msg("admin logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}
