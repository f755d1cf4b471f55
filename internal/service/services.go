// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/joke-moderator/internal/adapter"
	"github.com/MKhiriev/joke-moderator/internal/config"
	"github.com/MKhiriev/joke-moderator/internal/validators"
	"github.com/MKhiriev/joke-moderator/models"
)

type Services struct {
	AuthService       AuthService
	ModerationService ModerationService
	AppInfoService    AppInfoService
}

func NewServices(jokeAdapter adapter.JokeAdapter, cfg config.StructuredConfig, buildInfo models.AppBuildInfo) (*Services, error) {
	validator := validators.NewStructValidator()

	appInfoService, err := NewAppInfoService(buildInfo)
	if err != nil {
		return nil, err
	}

	moderationService := NewModerationValidationService(validator).
		Wrap(NewModerationService(jokeAdapter))

	return &Services{
		AuthService:       NewAuthService(cfg.App, validator),
		ModerationService: moderationService,
		AppInfoService:    appInfoService,
	}, nil
}
