// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/it-works-on-my-machine/internal/utils"
	"github.com/MKhiriev/it-works-on-my-machine/models"
)

// notFound answers every request no route matches, whatever its method.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) error {
	return respond(w, r, models.ErrorResponse{
		Error:     errorNotFound,
		Message:   fmt.Sprintf("Route %s %s not found", r.Method, requestURI(r)),
		Timestamp: utils.Timestamp(time.Now()),
	}, http.StatusNotFound)
}
