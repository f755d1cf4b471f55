// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/joke-moderator/internal/logger"
	"github.com/MKhiriev/joke-moderator/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This function overrides that behaviour: if the requested
// method is not registered for the matched route, it responds with
// HTTP 404 Not Found instead, hiding the existence of the route from callers
// that use an unsupported method.
//
// The lookup goes through [chi.Mux.Match], so parameterised patterns such as
// /api/jokes/{id}/approve and mounted sub-routers are resolved the same way
// the router resolves them. If the method IS registered, the request is
// forwarded to the router's normal ServeHTTP pipeline.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("method is not registered for route")
		utils.WriteMessage(w, msgNotFound, http.StatusNotFound)
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, msgNotFound, http.StatusNotFound)
}
