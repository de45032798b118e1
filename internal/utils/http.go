// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
)

// ContentTypeJSON is the Content-Type of every JSON response.
const ContentTypeJSON = "application/json"

// ErrMarshalingJSON wraps every serialization failure of [WriteJSON]. Other
// errors come from the underlying writer, after the status line was sent.
var ErrMarshalingJSON = errors.New("error writing data to JSON")

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails nothing is written to w, so the caller can still
// answer with an error response, and a wrapped error is returned.
//
// Example usage:
//
//	WriteJSON(w, models.ReadinessStatus{Status: "ready"}, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: "Not Found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMarshalingJSON, err)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
