// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/joke-moderator/internal/logger"
)

// withCORS handles Cross-Origin Resource Sharing for the moderation UI.
//
// With no configured whitelist every origin is allowed and answered with
// "Access-Control-Allow-Origin: *". With a whitelist only listed origins
// (case-insensitive exact match) get CORS headers; rejected origins are
// logged.
//
// Preflight requests (OPTIONS) are answered with 204 No Content and never
// reach the router.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin != "" {
			allowedOrigin := ""
			switch {
			case len(h.cors.AllowedOrigins) == 0:
				allowedOrigin = "*"
			case isOriginAllowed(origin, h.cors.AllowedOrigins):
				allowedOrigin = origin
				w.Header().Add("Vary", "Origin")
			default:
				logger.FromRequest(r).Warn().
					Str("origin", origin).
					Str("path", r.URL.Path).
					Str("method", r.Method).
					Msg("CORS request rejected: origin not in whitelist")
			}

			if allowedOrigin != "" {
				w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, HEAD, PUT, PATCH, POST, DELETE")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept, X-Trace-ID")
				w.Header().Set("Access-Control-Expose-Headers", "Authorization, X-Trace-ID")
				w.Header().Set("Access-Control-Max-Age", "86400")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// isOriginAllowed checks if the given origin is in the allowed list.
// Performs case-insensitive exact match.
func isOriginAllowed(origin string, allowedOrigins []string) bool {
	origin = strings.ToLower(strings.TrimSpace(origin))
	for _, allowed := range allowedOrigins {
		if strings.ToLower(strings.TrimSpace(allowed)) == origin {
			return true
		}
	}
	return false
}
