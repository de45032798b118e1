// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/it-works-on-my-machine/internal/config"
	"github.com/MKhiriev/it-works-on-my-machine/internal/logger"
	"github.com/MKhiriev/it-works-on-my-machine/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	// prometheus serves the exposition of a registry owned by this handler.
	prometheus http.Handler

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		cfg:        cfg,
		prometheus: newPrometheusHandler(),
		logger:     logger,
	}
}
