// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AdminEmail == "" || cfg.App.AdminPassword == "" {
		return fmt.Errorf("%w: administrator email and password are required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if err := validateBaseURL(cfg.Adapter.SubmissionURL); err != nil {
		return fmt.Errorf("%w: submission url: %w", ErrInvalidAdapterConfigs, err)
	}

	if err := validateBaseURL(cfg.Adapter.DeliveryURL); err != nil {
		return fmt.Errorf("%w: delivery url: %w", ErrInvalidAdapterConfigs, err)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative upstream timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.Server.HTTPAddress == "" && (cfg.Server.Port < 1 || cfg.Server.Port > 65535) {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	return nil
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("address must include host and scheme")
	}

	return nil
}
