// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("upstream rejected request")
	ErrUnauthorized        = errors.New("upstream unauthorized")
	ErrForbidden           = errors.New("upstream forbidden")
	ErrNotFound            = errors.New("upstream resource not found")
	ErrConflict            = errors.New("upstream conflict")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	ErrInvalidBaseURL  = errors.New("invalid upstream base url")
	ErrInvalidResponse = errors.New("invalid upstream response")
	ErrEmptyJokeID     = errors.New("empty joke id")
)
