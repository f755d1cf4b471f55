// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-submit-url submission store base URL
//	-deliver-url delivery store base URL
//	-upstream-timeout upstream request timeout (e.g., "5s")
//	-request-timeout inbound request timeout (e.g., "30s")
//	-admin-email administrator email
//	-token-issuer token issuer name
//	-log-level log level (debug, info, warn, error)
//	-cors-origins comma-separated CORS origin whitelist
//
// Secrets (administrator password, token sign key) are only accepted from the
// environment or the JSON file.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("joke-moderator", flag.ContinueOnError)

	var serverAddress NetAddress
	var jsonConfigPath string
	var submissionURL, deliveryURL string
	var upstreamTimeout, requestTimeout time.Duration
	var adminEmail, tokenIssuer, logLevel string
	var corsOrigins string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&submissionURL, "submit-url", "", "Submission store base URL")
	fs.StringVar(&deliveryURL, "deliver-url", "", "Delivery store base URL")
	fs.DurationVar(&upstreamTimeout, "upstream-timeout", 0, "Upstream request timeout (e.g., 5s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&adminEmail, "admin-email", "", "Administrator email")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma-separated CORS allowed origins")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AdminEmail:  adminEmail,
			TokenIssuer: tokenIssuer,
			LogLevel:    logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			SubmissionURL:  submissionURL,
			DeliveryURL:    deliveryURL,
			RequestTimeout: upstreamTimeout,
		},
		CORS: CORS{
			AllowedOrigins: splitOrigins(corsOrigins),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitOrigins(s string) []string {
	var origins []string
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
