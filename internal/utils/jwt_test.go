// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/joke-moderator/models"
	"github.com/golang-jwt/jwt/v5"
)

var issuedAt = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("joke-moderator", "admin@x.com", models.RoleAdmin, issuedAt, time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Claims.Email != "admin@x.com" {
		t.Errorf("expected email admin@x.com, got %s", token.Claims.Email)
	}
	if token.Claims.Role != models.RoleAdmin {
		t.Errorf("expected role admin, got %s", token.Claims.Role)
	}
	if got := token.Claims.ExpiresAt.Sub(token.Claims.IssuedAt.Time); got != time.Hour {
		t.Errorf("expected exp-iat of 1h, got %s", got)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		email    string
		role     string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "a@x.com", "admin", time.Hour, "key"},
		{"empty email", "iss", "", "admin", time.Hour, "key"},
		{"empty role", "iss", "a@x.com", "", time.Hour, "key"},
		{"zero duration", "iss", "a@x.com", "admin", 0, "key"},
		{"empty key", "iss", "a@x.com", "admin", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.email, tt.role, issuedAt, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("iss", "admin@x.com", models.RoleAdmin, issuedAt, time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "key", "iss", fixedClock(issuedAt.Add(59*time.Minute)))
	if err != nil {
		t.Fatalf("expected valid token, got: %v", err)
	}
	if parsed.Claims.Email != "admin@x.com" || parsed.Claims.Role != models.RoleAdmin {
		t.Errorf("unexpected claims: %+v", parsed.Claims)
	}
	if !parsed.Claims.IssuedAt.Time.Equal(issuedAt) {
		t.Errorf("expected iat %s, got %s", issuedAt, parsed.Claims.IssuedAt.Time)
	}
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	valid, err := GenerateJWTToken("iss", "admin@x.com", models.RoleAdmin, issuedAt, time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, valid.Claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	parts := strings.Split(valid.SignedString, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
		now    time.Time
	}{
		{"expired", valid.SignedString, "key", "iss", issuedAt.Add(time.Hour + time.Second)},
		{"wrong key", valid.SignedString, "other-key", "iss", issuedAt},
		{"wrong issuer", valid.SignedString, "key", "someone-else", issuedAt},
		{"tampered payload", tampered, "key", "iss", issuedAt},
		{"alg none", noneToken, "key", "iss", issuedAt},
		{"garbage", "not-a-jwt", "key", "iss", issuedAt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer, fixedClock(tt.now))
			if err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
