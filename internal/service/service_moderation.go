// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/joke-moderator/internal/adapter"
	"github.com/MKhiriev/joke-moderator/internal/logger"
	"github.com/MKhiriev/joke-moderator/internal/metrics"
	"github.com/MKhiriev/joke-moderator/models"
)

const (
	actionApprove = "approve"
	actionReject  = "reject"

	resultSuccess = "success"
	resultFailure = "failure"
	resultPartial = "partial"
)

type moderationService struct {
	jokeAdapter adapter.JokeAdapter
}

// NewModerationService returns a ModerationService backed by jokeAdapter.
// Input is not validated here; wrap the result with
// NewModerationValidationService for that.
func NewModerationService(jokeAdapter adapter.JokeAdapter) ModerationService {
	return &moderationService{
		jokeAdapter: jokeAdapter,
	}
}

// NextJoke returns the next joke waiting in the submission store, or
// ErrNoJokesForModeration if there is none.
func (m *moderationService) NextJoke(ctx context.Context) (models.Joke, error) {
	joke, err := m.jokeAdapter.GetUnmoderatedJoke(ctx)
	if errors.Is(err, adapter.ErrNotFound) {
		return models.Joke{}, ErrNoJokesForModeration
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("fetching unmoderated joke failed")
		return models.Joke{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	return joke, nil
}

// ApproveJoke creates the joke in the delivery store and then removes it
// from the submission store. The two writes are not atomic:
//   - if the create fails the delete is not attempted;
//   - if the delete fails the joke stays in both stores. Nothing is rolled
//     back; the failure is logged with the joke id, counted in
//     metrics.ApprovePartialFailuresTotal and returned as ErrApprovePartial.
func (m *moderationService) ApproveJoke(ctx context.Context, id models.JokeID, joke models.ApproveRequest) error {
	log := logger.FromContext(ctx)

	if err := m.jokeAdapter.CreateDeliveredJoke(ctx, joke); err != nil {
		log.Err(err).Str("joke_id", id.String()).Msg("creating joke in delivery store failed")
		metrics.ModerationDecisionsTotal.WithLabelValues(actionApprove, resultFailure).Inc()
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	if err := m.jokeAdapter.DeleteSubmittedJoke(ctx, id); err != nil {
		log.Err(err).
			Str("joke_id", id.String()).
			Str("content", joke.Content).
			Str("type", joke.Type).
			Msg("joke delivered but not deleted from submission store, needs reconciliation")
		metrics.ApprovePartialFailuresTotal.Inc()
		metrics.ModerationDecisionsTotal.WithLabelValues(actionApprove, resultPartial).Inc()
		return fmt.Errorf("%w: %w: %w", ErrUpstream, ErrApprovePartial, err)
	}

	metrics.ModerationDecisionsTotal.WithLabelValues(actionApprove, resultSuccess).Inc()
	return nil
}

// RejectJoke deletes the joke from the submission store. It returns
// ErrJokeNotFound if the store does not know the id.
func (m *moderationService) RejectJoke(ctx context.Context, id models.JokeID) error {
	log := logger.FromContext(ctx)

	err := m.jokeAdapter.DeleteSubmittedJoke(ctx, id)
	if errors.Is(err, adapter.ErrNotFound) {
		log.Debug().Str("joke_id", id.String()).Msg("rejected joke not found")
		metrics.ModerationDecisionsTotal.WithLabelValues(actionReject, resultFailure).Inc()
		return ErrJokeNotFound
	}
	if err != nil {
		log.Err(err).Str("joke_id", id.String()).Msg("deleting joke from submission store failed")
		metrics.ModerationDecisionsTotal.WithLabelValues(actionReject, resultFailure).Inc()
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	metrics.ModerationDecisionsTotal.WithLabelValues(actionReject, resultSuccess).Inc()
	return nil
}

// JokeTypes returns the joke types of the delivery store in upstream order,
// without empty entries and duplicates. Upstream failures yield an empty,
// non-nil slice.
func (m *moderationService) JokeTypes(ctx context.Context) []string {
	types, err := m.jokeAdapter.GetJokeTypes(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("fetching joke types failed, answering with empty list")
		return []string{}
	}

	seen := make(map[string]struct{}, len(types))
	result := make([]string, 0, len(types))
	for _, t := range types {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}

	return result
}
