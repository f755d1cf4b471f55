// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"os"
	"strconv"
	"time"
)

// Defaults applied after all sources are merged.
const (
	DefaultPort        = 3002
	DefaultTokenIssuer = "joke-moderator"
	DefaultLogLevel    = "debug"
)

// StructuredConfig is the top-level configuration container for the
// joke-moderator application. It aggregates all sub-configurations and is
// populated by merging values from a .env file and environment variables,
// command-line flags, and an optional JSON file.
//
// Environment variable names are kept compatible with existing deployments of
// the moderation service (ADMIN_EMAIL, JWT_SECRET, SUBMIT_JOKES_URL, ...), so
// nested groups carry no envPrefix.
//
// The configuration is read once at startup and never mutated afterwards.
type StructuredConfig struct {
	// App holds administrator credentials, token parameters and log level.
	App App

	// Server holds the listening address of the HTTP server.
	Server Server

	// Adapter holds the base URLs of the two upstream joke stores.
	Adapter Adapter

	// CORS holds cross-origin settings for the browser moderation UI.
	CORS CORS

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// AdminEmail is the email of the single administrator.
	// Env: ADMIN_EMAIL
	AdminEmail string `env:"ADMIN_EMAIL"`

	// AdminPassword is the password of the single administrator.
	// Env: ADMIN_PASSWORD
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// TokenSignKey is the secret key used to sign and verify access tokens.
	// Env: JWT_SECRET
	TokenSignKey string `env:"JWT_SECRET"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format. When empty the
	// server listens on all interfaces on Port.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// Port is used when HTTPAddress is empty.
	// Env: PORT
	Port int `env:"PORT"`

	// RequestTimeout bounds reading a request and writing its response.
	// Zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`
}

// Address returns the address the HTTP server should listen on.
func (s Server) Address() string {
	if s.HTTPAddress != "" {
		return s.HTTPAddress
	}

	return net.JoinHostPort("", strconv.Itoa(s.Port))
}

// Adapter holds the upstream store settings. It is passed by value to the
// upstream client constructor.
type Adapter struct {
	// SubmissionURL is the base URL of the submission store, which holds
	// jokes waiting for moderation.
	// Env: SUBMIT_JOKES_URL
	SubmissionURL string `env:"SUBMIT_JOKES_URL"`

	// DeliveryURL is the base URL of the delivery store, which holds
	// approved jokes.
	// Env: DELIVER_JOKES_URL
	DeliveryURL string `env:"DELIVER_JOKES_URL"`

	// RequestTimeout is the timeout of a single upstream call.
	// Zero keeps the HTTP client default (no timeout).
	// Env: UPSTREAM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"UPSTREAM_REQUEST_TIMEOUT"`
}

// CORS holds cross-origin settings.
type CORS struct {
	// AllowedOrigins is the origin whitelist. Empty allows every origin.
	// Env: CORS_ALLOWED_ORIGINS (comma-separated)
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables (a .env file in the working directory is loaded
//     first and never overrides variables that are already set)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

func (cfg *StructuredConfig) setDefaults() {
	if cfg.Server.HTTPAddress == "" && cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
}
