// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/joke-moderator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""))

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_ZeroBuildInfo_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(models.AppBuildInfo{})

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppInfo
// ─────────────────────────────────────────────

func TestGetAppInfo_ReturnsBuildInfo(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("3.1.4", "2026-10-15", "abc123"))
	require.NoError(t, err)

	got := svc.GetAppInfo(context.Background())

	assert.Equal(t, models.AppInfoResponse{Version: "3.1.4", Date: "2026-10-15", Commit: "abc123"}, got)
}

func TestGetAppInfo_MissingValuesReportedAsNA(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("", "", ""))
	require.NoError(t, err)

	got := svc.GetAppInfo(context.Background())

	assert.Equal(t, "N/A", got.Version)
	assert.Equal(t, "N/A", got.Date)
	assert.Equal(t, "N/A", got.Commit)
}
