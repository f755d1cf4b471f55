// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/joke-moderator/internal/validators"
	"github.com/MKhiriev/joke-moderator/models"
)

// ModerationServiceWrapper defines middleware composition for ModerationService.
// Implementations wrap an existing ModerationService to add behavior such as
// validating.
type ModerationServiceWrapper interface {
	Wrap(ModerationService) ModerationService // returns a decorated ModerationService applying additional behavior
}

// ModerationValidationService rejects malformed moderation input before it
// reaches the wrapped service, so no upstream store is called for it.
type ModerationValidationService struct {
	inner     ModerationService
	validator validators.Validator
}

func NewModerationValidationService(validator validators.Validator) ModerationServiceWrapper {
	return &ModerationValidationService{
		validator: validator,
	}
}

func (v *ModerationValidationService) NextJoke(ctx context.Context) (models.Joke, error) {
	return v.inner.NextJoke(ctx)
}

func (v *ModerationValidationService) ApproveJoke(ctx context.Context, id models.JokeID, joke models.ApproveRequest) error {
	if strings.TrimSpace(id.String()) == "" {
		return fmt.Errorf("%w: empty joke id", ErrInvalidDataProvided)
	}

	// content and type are both required
	if err := v.validator.Validate(ctx, joke); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ApproveJoke(ctx, id, joke)
}

func (v *ModerationValidationService) RejectJoke(ctx context.Context, id models.JokeID) error {
	if strings.TrimSpace(id.String()) == "" {
		return fmt.Errorf("%w: empty joke id", ErrInvalidDataProvided)
	}

	return v.inner.RejectJoke(ctx, id)
}

func (v *ModerationValidationService) JokeTypes(ctx context.Context) []string {
	return v.inner.JokeTypes(ctx)
}

func (v *ModerationValidationService) Wrap(wrapper ModerationService) ModerationService {
	v.inner = wrapper
	return v
}
