// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// DefaultMaxBodySize is the largest accepted request body.
const DefaultMaxBodySize int64 = 1 << 20 // 1MB

// withRequestSize limits the size of incoming request bodies. Reading past
// maxBytes fails with [http.MaxBytesError], which the JSON handlers turn
// into 413.
func withRequestSize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

			next.ServeHTTP(w, r)
		})
	}
}
