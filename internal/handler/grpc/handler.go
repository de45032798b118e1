// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service, reporting SERVING
// while the server accepts traffic and NOT_SERVING once it drains.
package grpc

import (
	"github.com/MKhiriev/it-works-on-my-machine/internal/logger"
	"github.com/MKhiriev/it-works-on-my-machine/models"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// healthServices are the service names answered by the health service. The
// empty name stands for the whole server.
var healthServices = []string{"", models.ServiceName}

// Handler is the root gRPC transport handler.
//
// It owns the health server. The lifecycle controller flips it to serving
// once listening and to not serving when draining starts.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler creates a [Handler] whose services report NOT_SERVING until
// [Handler.SetServing] is called.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s. It must be called before
// s starts serving.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing reports every health service as SERVING.
func (h *Handler) SetServing() {
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
	h.logger.Debug().Msg("gRPC health is serving")
}

// Shutdown reports every health service as NOT_SERVING. Later calls to
// SetServing are ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
	h.logger.Debug().Msg("gRPC health is not serving")
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	for _, service := range healthServices {
		h.health.SetServingStatus(service, status)
	}
}
