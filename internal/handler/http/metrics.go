// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// getRuntimeMetrics reports point-in-time process counters. A failure to
// read them ends in the error handler.
func (h *Handler) getRuntimeMetrics(w http.ResponseWriter, r *http.Request) error {
	metrics, err := h.services.RuntimeMetricsService.GetRuntimeMetrics(r.Context())
	if err != nil {
		return err
	}

	return respond(w, r, metrics, http.StatusOK)
}

// newPrometheusHandler exposes the Go runtime and process collectors of a
// private registry. Nothing is aggregated per request.
func newPrometheusHandler() http.Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)

	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
