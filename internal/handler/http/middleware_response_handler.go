// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] to observe the status code
// and the body size written by downstream handlers, without buffering the
// body.
//
// WriteHeader is forwarded to the underlying writer exactly once; later
// calls are ignored, as the [http.ResponseWriter] contract requires.
type responseWriter struct {
	http.ResponseWriter

	// status is zero until WriteHeader, explicit or implicit, is called.
	status      int
	wroteHeader bool

	// size is the running total of body bytes written.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implies WriteHeader(http.StatusOK) when no status was sent yet.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap lets [http.ResponseController] reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// statusCode is the status the client received. A handler that wrote
// nothing at all is answered with 200 by net/http.
func (w *responseWriter) statusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
