// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/it-works-on-my-machine/internal/logger"
)

// withRecovery turns a panic in a handler into the error handler's 500
// response. http.ErrAbortHandler is re-raised so net/http can abort the
// connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rec).
				Str("stack", string(debug.Stack())).
				Msg("panic recovered")

			h.internalError(w, r, panicError(rec))
		}()

		next.ServeHTTP(w, r)
	})
}

// panicError converts a recovered value into an error, keeping it when it
// already is one.
func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return fmt.Errorf("%w: %v", errPanicRecovered, rec)
}
