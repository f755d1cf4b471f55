// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/joke-moderator/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
}

func NewAppInfoService(buildInfo models.AppBuildInfo) (AppInfoService, error) {
	if buildInfo.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		buildInfo: buildInfo,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfoResponse {
	return models.AppInfoResponse{
		Version: s.buildInfo.BuildVersion(),
		Date:    s.buildInfo.BuildDate(),
		Commit:  s.buildInfo.BuildCommit(),
	}
}
