// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/joke-moderator/internal/metrics"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.withRecovery,
		withSecurityHeaders,
		h.withCORS,
		withRequestSize(DefaultMaxBodySize),
	)

	router.Get("/metrics", metrics.Handler().ServeHTTP)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/login", h.login)
			r.Get("/version", h.getServerVersion)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/jokes", func(r chi.Router) {
				r.Get("/next", h.nextJoke)
				r.Get("/types", h.jokeTypes)
				r.Post("/{id}/approve", h.approveJoke)
				r.Post("/{id}/reject", h.rejectJoke)
			})
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
