// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/joke-moderator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) error
	CreateToken(ctx context.Context, email string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ModerationService moves jokes from the submission store to the delivery
// store (approve) or out of the submission store (reject).
type ModerationService interface {
	NextJoke(ctx context.Context) (models.Joke, error)
	ApproveJoke(ctx context.Context, id models.JokeID, joke models.ApproveRequest) error
	RejectJoke(ctx context.Context, id models.JokeID) error

	// JokeTypes never fails: an unavailable delivery store yields an empty list.
	JokeTypes(ctx context.Context) []string
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfoResponse
}
