// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/joke-moderator/internal/logger"
	"github.com/MKhiriev/joke-moderator/internal/utils"
)

// withRecovery turns a panic in any later handler into a JSON 500
// {"message": "Something went wrong!"}. The panic value and stack are only
// logged.
//
// [http.ErrAbortHandler] is re-panicked so net/http can abort the response
// as it expects.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}

			if err, ok := rvr.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rvr)).
				Bytes("stack", debug.Stack()).
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Msg("recovered from panic")

			utils.WriteMessage(w, msgSomethingWentWrong, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
