// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers built on top of the
// service layer.
package handler

import (
	"github.com/MKhiriev/it-works-on-my-machine/internal/config"
	"github.com/MKhiriev/it-works-on-my-machine/internal/handler/grpc"
	"github.com/MKhiriev/it-works-on-my-machine/internal/handler/http"
	"github.com/MKhiriev/it-works-on-my-machine/internal/logger"
	"github.com/MKhiriev/it-works-on-my-machine/internal/service"
)

// Handlers holds one handler per transport. GRPC is nil unless a gRPC
// address is configured.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}

	handlers := &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	return handlers, nil
}
