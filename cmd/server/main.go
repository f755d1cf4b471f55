// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/joke-moderator/internal/adapter"
	"github.com/MKhiriev/joke-moderator/internal/config"
	"github.com/MKhiriev/joke-moderator/internal/handler"
	"github.com/MKhiriev/joke-moderator/internal/logger"
	"github.com/MKhiriev/joke-moderator/internal/metrics"
	"github.com/MKhiriev/joke-moderator/internal/server"
	"github.com/MKhiriev/joke-moderator/internal/service"
	"github.com/MKhiriev/joke-moderator/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("joke-moderator")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().
		Str("address", cfg.Server.Address()).
		Str("submission_url", cfg.Adapter.SubmissionURL).
		Str("delivery_url", cfg.Adapter.DeliveryURL).
		Dur("upstream_timeout", cfg.Adapter.RequestTimeout).
		Str("token_issuer", cfg.App.TokenIssuer).
		Strs("cors_allowed_origins", cfg.CORS.AllowedOrigins).
		Msg("received configs")

	metrics.SetAppInfo(buildInfo.BuildVersion(), buildInfo.BuildCommit(), buildInfo.BuildDate())

	jokeAdapter, err := adapter.NewHTTPJokeAdapter(cfg.Adapter)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating upstream adapter")
	}

	services, err := service.NewServices(jokeAdapter, *cfg, buildInfo)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
