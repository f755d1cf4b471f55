// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/joke-moderator/internal/logger"
	"github.com/MKhiriev/joke-moderator/internal/service"
	"github.com/MKhiriev/joke-moderator/internal/utils"
	"github.com/MKhiriev/joke-moderator/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) nextJoke(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	joke, err := h.services.ModerationService.NextJoke(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoJokesForModeration):
			utils.WriteMessage(w, msgNoJokesForModeration, http.StatusNotFound)
		default:
			log.Err(err).Msg("fetching next joke failed")
			utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, joke, http.StatusOK)
}

func (h *Handler) approveJoke(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := models.JokeID(chi.URLParam(r, "id"))

	var req models.ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDecodeError(w, r, err)
		return
	}

	if err := h.services.ModerationService.ApproveJoke(r.Context(), id, req); err != nil {
		switch statusFromError(err) {
		case http.StatusBadRequest:
			log.Err(err).Str("joke_id", id.String()).Msg("invalid approve request")
			utils.WriteMessage(w, msgApproveFieldsMissing, http.StatusBadRequest)
		default:
			log.Err(err).Str("joke_id", id.String()).Msg("approving joke failed")
			utils.WriteMessage(w, msgApproveFailed, http.StatusInternalServerError)
		}
		return
	}

	log.Info().Str("joke_id", id.String()).Str("moderator", moderatorEmail(r)).Msg("joke approved")
	utils.WriteMessage(w, msgApproved, http.StatusOK)
}

func (h *Handler) rejectJoke(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := models.JokeID(chi.URLParam(r, "id"))

	if err := h.services.ModerationService.RejectJoke(r.Context(), id); err != nil {
		switch statusFromError(err) {
		case http.StatusBadRequest:
			log.Err(err).Msg("invalid reject request")
			utils.WriteMessage(w, msgJokeIDMissing, http.StatusBadRequest)
		case http.StatusNotFound:
			utils.WriteMessage(w, msgJokeNotFound, http.StatusNotFound)
		default:
			log.Err(err).Str("joke_id", id.String()).Msg("rejecting joke failed")
			utils.WriteMessage(w, msgRejectFailed, http.StatusInternalServerError)
		}
		return
	}

	log.Info().Str("joke_id", id.String()).Str("moderator", moderatorEmail(r)).Msg("joke rejected")
	utils.WriteMessage(w, msgRejected, http.StatusOK)
}

func (h *Handler) jokeTypes(w http.ResponseWriter, r *http.Request) {
	types := h.services.ModerationService.JokeTypes(r.Context())
	if types == nil {
		types = []string{}
	}

	utils.WriteJSON(w, types, http.StatusOK)
}

func moderatorEmail(r *http.Request) string {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		return ""
	}
	return claims.Email
}

// writeDecodeError answers a request whose JSON body could not be decoded.
// Bodies cut off by the size limit get 413, everything else 400.
func writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		logger.FromRequest(r).Err(err).Msg("request body too large")
		utils.WriteMessage(w, msgRequestTooLarge, http.StatusRequestEntityTooLarge)
		return
	}

	logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
	utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
}
