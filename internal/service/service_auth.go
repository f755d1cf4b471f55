// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/joke-moderator/internal/config"
	"github.com/MKhiriev/joke-moderator/internal/logger"
	"github.com/MKhiriev/joke-moderator/internal/utils"
	"github.com/MKhiriev/joke-moderator/internal/validators"
	"github.com/MKhiriev/joke-moderator/models"
)

// TokenDuration is how long an issued token stays valid.
const TokenDuration = time.Hour

// authService is the concrete implementation of AuthService.
// It checks credentials against the single configured administrator account
// and handles the JWT token lifecycle.
type authService struct {
	// adminEmail and adminPassword are the only accepted credentials.
	adminEmail    string
	adminPassword string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	validator validators.Validator

	// now is the clock used for "iat"/"exp" on issue and for expiry checks
	// on parse.
	now func() time.Time

}

// NewAuthService constructs a new AuthService populated with the admin
// account and token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, validator validators.Validator) AuthService {
	return &authService{
		adminEmail:    cfg.AdminEmail,
		adminPassword: cfg.AdminPassword,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: TokenDuration,
		validator:     validator,
		now:           time.Now,
	}
}

// Login authenticates the administrator.
//
// The credentials are validated structurally first (well-formed email,
// password of at least 6 characters), then compared with the configured
// account. Both fields must match exactly. Malformed credentials never reach
// the comparison.
//
// Returns ErrInvalidCredentials when the credentials are malformed or either
// field does not match. The error does not tell which one.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Str("email", credentials.Email).Msg("malformed credentials")
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	emailOK := subtle.ConstantTimeCompare([]byte(credentials.Email), []byte(a.adminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(credentials.Password), []byte(a.adminPassword)) == 1
	if !emailOK || !passwordOK {
		log.Warn().Str("email", credentials.Email).Msg("login attempt with wrong credentials")
		return ErrInvalidCredentials
	}

	return nil
}

// CreateToken issues a signed JWT for the administrator identified by email.
//
// The token carries the admin role, the configured tokenIssuer as the "iss"
// claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, email string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, email, models.RoleAdmin, a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the signing method, the expiry and the issuer claim. Any validation
// failure is normalised to ErrTokenIsExpiredOrInvalid so that callers do not
// need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
