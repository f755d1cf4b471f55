// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/joke-moderator/internal/config"
	"github.com/MKhiriev/joke-moderator/internal/metrics"
	"github.com/MKhiriev/joke-moderator/internal/utils"
	"github.com/MKhiriev/joke-moderator/models"
)

const (
	storeSubmission = "submission"
	storeDelivery   = "delivery"
)

type httpJokeAdapter struct {
	submission *utils.HTTPClient
	delivery   *utils.HTTPClient
}

// NewHTTPJokeAdapter constructs an HTTP/REST implementation of [JokeAdapter].
// It normalises and validates both base URLs from cfg and creates one HTTP
// client per store, each bound by cfg.RequestTimeout.
//
// Returns an error if either base URL is empty or cannot be parsed.
func NewHTTPJokeAdapter(cfg config.Adapter) (JokeAdapter, error) {
	submissionURL, err := normalizeBaseURL(cfg.SubmissionURL)
	if err != nil {
		return nil, fmt.Errorf("invalid submission store address: %w", err)
	}

	deliveryURL, err := normalizeBaseURL(cfg.DeliveryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid delivery store address: %w", err)
	}

	return &httpJokeAdapter{
		submission: utils.NewHTTPClient(submissionURL, cfg.RequestTimeout),
		delivery:   utils.NewHTTPClient(deliveryURL, cfg.RequestTimeout),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidBaseURL)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidBaseURL)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetUnmoderatedJoke implements [JokeAdapter]. It sends
// GET /jokes/unmoderated to the submission store.
func (h *httpJokeAdapter) GetUnmoderatedJoke(ctx context.Context) (joke models.Joke, err error) {
	defer observe(storeSubmission, "get_unmoderated", time.Now(), &err)

	resp, err := h.submission.R().
		SetContext(ctx).
		Get("/jokes/unmoderated")
	if err != nil {
		return models.Joke{}, fmt.Errorf("get unmoderated joke request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Joke{}, err
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return models.Joke{}, fmt.Errorf("%w: empty response", ErrNotFound)
	}

	if err = json.Unmarshal(body, &joke); err != nil {
		return models.Joke{}, fmt.Errorf("%w: decode unmoderated joke: %w", ErrInvalidResponse, err)
	}
	if joke.IsEmpty() {
		return models.Joke{}, fmt.Errorf("%w: empty joke", ErrNotFound)
	}

	return joke, nil
}

// CreateDeliveredJoke implements [JokeAdapter]. It POSTs the joke to
// POST /jokes on the delivery store.
func (h *httpJokeAdapter) CreateDeliveredJoke(ctx context.Context, joke models.ApproveRequest) (err error) {
	defer observe(storeDelivery, "create", time.Now(), &err)

	resp, err := h.delivery.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(joke).
		Post("/jokes")
	if err != nil {
		return fmt.Errorf("create delivered joke request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteSubmittedJoke implements [JokeAdapter]. It sends
// DELETE /jokes/{id} to the submission store. The id is path-escaped and
// otherwise passed through untouched.
func (h *httpJokeAdapter) DeleteSubmittedJoke(ctx context.Context, id models.JokeID) (err error) {
	defer observe(storeSubmission, "delete", time.Now(), &err)

	if id == "" {
		return ErrEmptyJokeID
	}

	resp, err := h.submission.R().
		SetContext(ctx).
		SetPathParam("id", id.String()).
		Delete("/jokes/{id}")
	if err != nil {
		return fmt.Errorf("delete submitted joke %q request: %w", id, err)
	}

	return mapHTTPError(resp)
}

// GetJokeTypes implements [JokeAdapter]. It sends GET /jokes/types to the
// delivery store and decodes a JSON array of strings.
func (h *httpJokeAdapter) GetJokeTypes(ctx context.Context) (types []string, err error) {
	defer observe(storeDelivery, "get_types", time.Now(), &err)

	resp, err := h.delivery.R().
		SetContext(ctx).
		Get("/jokes/types")
	if err != nil {
		return nil, fmt.Errorf("get joke types request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if err = json.Unmarshal(resp.Body(), &types); err != nil {
		return nil, fmt.Errorf("%w: decode joke types: %w", ErrInvalidResponse, err)
	}

	return types, nil
}

func observe(store, operation string, start time.Time, err *error) {
	metrics.ObserveUpstreamCall(store, operation, *err, time.Since(start))
}
