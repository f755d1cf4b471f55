// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Messages returned to callers in {"message": ...} bodies.
const (
	msgInvalidJSON         = "Invalid JSON was passed"
	msgInternalServerError = "Internal server error"
	msgSomethingWentWrong  = "Something went wrong!"
	msgNotFound            = "Not found"
	msgRequestTooLarge     = "Request body too large"

	msgInvalidCredentials    = "Invalid credentials"
	msgNoAuthorizationHeader = "No authorization header"
	msgNoTokenProvided       = "No token provided"
	msgInvalidToken          = "Invalid token"

	msgNoJokesForModeration = "No jokes available for moderation"
	msgApproveFieldsMissing = "Content and type are required"
	msgApproveFailed        = "Failed to approve joke"
	msgApproved             = "Joke approved successfully"
	msgJokeIDMissing        = "Joke id is required"
	msgJokeNotFound         = "Joke not found"
	msgRejectFailed         = "Failed to reject joke"
	msgRejected             = "Joke rejected successfully"
)
