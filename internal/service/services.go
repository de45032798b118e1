// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service builds every payload returned by the transports. Services
// are stateless apart from the immutable configuration and the process
// start time they are created with.
package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/it-works-on-my-machine/internal/config"
	"github.com/MKhiriev/it-works-on-my-machine/internal/logger"
)

type Services struct {
	AppInfoService        AppInfoService
	RuntimeMetricsService RuntimeMetricsService
}

// NewServices creates all services. startedAt is the moment the process
// started and is the origin of every reported uptime.
func NewServices(cfg config.App, startedAt time.Time, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfoService, err := NewAppInfoService(cfg, startedAt, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AppInfoService:        appInfoService,
		RuntimeMetricsService: NewRuntimeMetricsService(startedAt, logger),
	}, nil
}

// uptimeSeconds returns the seconds elapsed between startedAt and now,
// never negative.
func uptimeSeconds(startedAt, now time.Time) float64 {
	return max(now.Sub(startedAt).Seconds(), 0)
}
