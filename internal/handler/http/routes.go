// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Middleware order matters: security headers are
// set first so that every response carries them, and recovery sits inside
// the logger so that recovered panics are logged with their 500 status.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(withSecurityHeaders)
	if h.cfg.TrustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.withRecovery)
	router.Use(middleware.GetHead)

	router.Get("/", h.handle(h.getServiceInfo))
	router.Get("/health", h.handle(h.getHealth))
	router.Get("/ready", h.handle(h.getReadiness))
	router.Get("/version", h.handle(h.getVersion))
	router.Get("/metrics", h.handle(h.getRuntimeMetrics))
	router.Method(http.MethodGet, "/metrics/prometheus", h.prometheus)

	// a known path with an unknown method is reported as an unknown route
	router.NotFound(h.handle(h.notFound))
	router.MethodNotAllowed(h.handle(h.notFound))

	return router
}
