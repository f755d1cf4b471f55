// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the two upstream joke stores.
//
// The submission store holds jokes waiting for moderation; the delivery store
// holds approved jokes and the list of joke types. [JokeAdapter] hides both
// behind a single interface so the service layer never deals with HTTP.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go, so callers use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUpstreamUnavailable] for 5xx).
package adapter

import (
	"context"

	"github.com/MKhiriev/joke-moderator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/joke_adapter_mock.go -package=mock

// JokeAdapter talks to the submission and delivery stores.
type JokeAdapter interface {
	// GetUnmoderatedJoke fetches the next joke waiting for moderation from the
	// submission store. It returns [ErrNotFound] when nothing is waiting,
	// whether the store answers with 404 or with an empty document.
	GetUnmoderatedJoke(ctx context.Context) (models.Joke, error)

	// CreateDeliveredJoke creates an approved joke in the delivery store.
	CreateDeliveredJoke(ctx context.Context, joke models.ApproveRequest) error

	// DeleteSubmittedJoke removes a joke from the submission store.
	DeleteSubmittedJoke(ctx context.Context, id models.JokeID) error

	// GetJokeTypes returns the joke types known to the delivery store, in the
	// order the store sends them.
	GetJokeTypes(ctx context.Context) ([]string, error)
}
