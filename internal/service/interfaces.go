// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/it-works-on-my-machine/models"
)

// AppInfoService builds the informational payloads of the service from the
// resolved configuration and the process start time.
type AppInfoService interface {
	// GetServiceInfo returns the body of GET /.
	GetServiceInfo(ctx context.Context) models.ServiceInfo
	// GetHealth returns the body of GET /health.
	GetHealth(ctx context.Context) models.HealthStatus
	// GetReadiness returns the body of GET /ready.
	GetReadiness(ctx context.Context) models.ReadinessStatus
	// GetVersion returns the body of GET /version.
	GetVersion(ctx context.Context) models.VersionInfo
	// IsProduction reports whether failure details must be hidden from
	// clients.
	IsProduction() bool
}

// RuntimeMetricsService reads point-in-time process counters.
type RuntimeMetricsService interface {
	// GetRuntimeMetrics returns the body of GET /metrics. Counters are read
	// on every call, never cached.
	GetRuntimeMetrics(ctx context.Context) (models.RuntimeMetrics, error)
}
