// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/joke-moderator/internal/config"
	"github.com/MKhiriev/joke-moderator/internal/handler/http"
	"github.com/MKhiriev/joke-moderator/internal/logger"
	"github.com/MKhiriev/joke-moderator/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.CORS, logger),
	}, nil
}
