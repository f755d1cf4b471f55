// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/joke-moderator/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key used to store the verified token claims in the
// request context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ClaimsCtxKey, token.Claims)
var ClaimsCtxKey = contextKey("claims")

// GetClaimsFromContext retrieves the verified token claims from the context.
//
// ok is false when the value is missing or has an unexpected type.
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}
