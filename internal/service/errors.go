// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNoJokesForModeration = errors.New("no jokes available for moderation")
	ErrJokeNotFound         = errors.New("joke not found")
	ErrUpstream             = errors.New("upstream store failure")
	ErrApprovePartial       = errors.New("joke delivered but not removed from submission store")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
