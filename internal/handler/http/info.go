// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

func (h *Handler) getServiceInfo(w http.ResponseWriter, r *http.Request) error {
	info := h.services.AppInfoService.GetServiceInfo(r.Context())
	return respond(w, r, info, http.StatusOK)
}

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) error {
	health := h.services.AppInfoService.GetHealth(r.Context())
	return respond(w, r, health, http.StatusOK)
}

// getReadiness always reports ready: the service has no dependencies to
// wait for.
func (h *Handler) getReadiness(w http.ResponseWriter, r *http.Request) error {
	readiness := h.services.AppInfoService.GetReadiness(r.Context())
	return respond(w, r, readiness, http.StatusOK)
}
