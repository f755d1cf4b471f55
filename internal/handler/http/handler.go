// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/joke-moderator/internal/config"
	"github.com/MKhiriev/joke-moderator/internal/logger"
	"github.com/MKhiriev/joke-moderator/internal/service"
	"github.com/MKhiriev/joke-moderator/internal/utils"
)

type Handler struct {
	services *service.Services

	cors     config.CORS
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cors config.CORS, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cors:     cors,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
