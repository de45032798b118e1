// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/it-works-on-my-machine/internal/logger"
)

// withLogging writes one info entry when a request arrives and one debug
// entry once it is answered.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		uri := requestURI(r)
		method := r.Method

		log.Info().
			Str("method", method).
			Str("path", r.URL.Path).
			Str("ip", clientIP(r)).
			Msg("request received")

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		log.Debug().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.statusCode()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Msg("request completed")
	})
}

// clientIP strips the port from RemoteAddr. Behind middleware.RealIP the
// address carries no port and is returned as is.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
