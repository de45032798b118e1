// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/it-works-on-my-machine/internal/logger"
	"github.com/MKhiriev/it-works-on-my-machine/internal/utils"
	"github.com/MKhiriev/it-works-on-my-machine/models"
)

// Fixed texts of the error responses.
const (
	errorNotFound            = "Not Found"
	errorInternalServerError = "Internal Server Error"

	// productionErrorMessage replaces the failure text when NODE_ENV is
	// "production".
	productionErrorMessage = "Something went wrong"
)

// errPanicRecovered is reported for a recovered panic whose value is not an
// error.
var errPanicRecovered = errors.New("panic recovered")

// handlerFunc is a route handler that reports failures instead of writing
// them. A non-nil error is turned into a 500 response by [Handler.handle].
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to [http.HandlerFunc], routing its error to the error
// handler.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.internalError(w, r, err)
		}
	}
}

// internalError is the error handler: err is logged with the request-scoped
// logger and answered with 500. The failure text reaches the client only
// outside production.
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	log.Err(err).
		Str("method", r.Method).
		Str("uri", requestURI(r)).
		Msg("error handling request")

	message := err.Error()
	if h.services.AppInfoService.IsProduction() {
		message = productionErrorMessage
	}

	body := models.ErrorResponse{
		Error:     errorInternalServerError,
		Message:   message,
		Timestamp: utils.Timestamp(time.Now()),
	}
	if _, writeErr := utils.WriteJSON(w, body, http.StatusInternalServerError); writeErr != nil {
		log.Warn().Err(writeErr).Msg("error writing error response")
	}
}

// respond writes data as JSON with the given status. Only serialization
// failures are returned: once the status line is sent a broken connection
// can only be logged.
func respond(w http.ResponseWriter, r *http.Request, data any, statusCode int) error {
	_, err := utils.WriteJSON(w, data, statusCode)
	if err == nil {
		return nil
	}
	if errors.Is(err, utils.ErrMarshalingJSON) {
		return err
	}

	logger.FromRequest(r).Warn().Err(err).Msg("error writing response")
	return nil
}

// requestURI returns the URL as sent by the client, query string included.
func requestURI(r *http.Request) string {
	if r.RequestURI != "" {
		return r.RequestURI
	}
	return r.URL.RequestURI()
}
