// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/it-works-on-my-machine/internal/config"
	"github.com/MKhiriev/it-works-on-my-machine/internal/logger"
	"github.com/MKhiriev/it-works-on-my-machine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testStartedAt = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	testNow       = testStartedAt.Add(90*time.Second + 250*time.Millisecond)
)

func defaultAppConfig() config.App {
	return config.App{
		Version:     config.DefaultVersion,
		Environment: config.DefaultEnvironment,
		BuildNumber: config.DefaultBuildNumber,
		GitCommit:   config.DefaultGitCommit,
	}
}

// newTestAppInfoService builds an appInfoService whose clock is frozen at
// testNow.
func newTestAppInfoService(t *testing.T, cfg config.App) *appInfoService {
	t.Helper()

	svc, err := NewAppInfoService(cfg, testStartedAt, logger.Nop())
	require.NoError(t, err)

	s := svc.(*appInfoService)
	s.now = func() time.Time { return testNow }
	return s
}

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(defaultAppConfig(), testStartedAt, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	cfg := defaultAppConfig()
	cfg.Version = ""

	svc, err := NewAppInfoService(cfg, testStartedAt, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

// ─────────────────────────────────────────────
// GetServiceInfo
// ─────────────────────────────────────────────

func TestGetServiceInfo(t *testing.T) {
	svc := newTestAppInfoService(t, defaultAppConfig())

	got := svc.GetServiceInfo(context.Background())

	assert.Equal(t, models.ServiceInfo{
		Service:     "it-works-on-my-machine",
		Version:     "1.0.0",
		Status:      "running",
		Environment: "development",
		Timestamp:   "2026-10-17T09:01:30.250Z",
	}, got)
}

// ─────────────────────────────────────────────
// GetHealth
// ─────────────────────────────────────────────

func TestGetHealth(t *testing.T) {
	cfg := defaultAppConfig()
	cfg.Version = "9.9.9"
	cfg.Environment = "staging"
	svc := newTestAppInfoService(t, cfg)

	got := svc.GetHealth(context.Background())

	assert.Equal(t, "healthy", got.Status)
	assert.Equal(t, "Still working... on *my* machine 🧃", got.Message)
	assert.InDelta(t, 90.25, got.Uptime, 1e-9)
	assert.Equal(t, "2026-10-17T09:01:30.250Z", got.Timestamp)
	assert.Equal(t, "9.9.9", got.Version)
	assert.Equal(t, "staging", got.Environment)
}

func TestGetHealth_UptimeNeverNegative(t *testing.T) {
	svc := newTestAppInfoService(t, defaultAppConfig())
	svc.now = func() time.Time { return testStartedAt.Add(-time.Second) }

	got := svc.GetHealth(context.Background())

	assert.Zero(t, got.Uptime)
}

// ─────────────────────────────────────────────
// GetReadiness
// ─────────────────────────────────────────────

func TestGetReadiness(t *testing.T) {
	svc := newTestAppInfoService(t, defaultAppConfig())

	got := svc.GetReadiness(context.Background())

	assert.Equal(t, models.ReadinessStatus{
		Status:    "ready",
		Timestamp: "2026-10-17T09:01:30.250Z",
	}, got)
}

// ─────────────────────────────────────────────
// GetVersion
// ─────────────────────────────────────────────

func TestGetVersion(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.App
		want models.VersionInfo
	}{
		{
			name: "defaults, build date falls back to now",
			cfg:  defaultAppConfig(),
			want: models.VersionInfo{
				Version:   "1.0.0",
				Build:     "dev",
				Commit:    "unknown",
				BuildDate: "2026-10-17T09:01:30.250Z",
			},
		},
		{
			name: "all values configured",
			cfg: config.App{
				Version:     "2.3.4",
				BuildNumber: "118",
				GitCommit:   "4f2a9c1",
				BuildDate:   "2026-09-30T12:00:00Z",
			},
			want: models.VersionInfo{
				Version:   "2.3.4",
				Build:     "118",
				Commit:    "4f2a9c1",
				BuildDate: "2026-09-30T12:00:00Z",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAppInfoService(t, tt.cfg)

			assert.Equal(t, tt.want, svc.GetVersion(context.Background()))
		})
	}
}

// ─────────────────────────────────────────────
// IsProduction
// ─────────────────────────────────────────────

func TestIsProduction(t *testing.T) {
	tests := []struct {
		environment string
		want        bool
	}{
		{"production", true},
		{"development", false},
		{"staging", false},
		{"Production", false},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			cfg := defaultAppConfig()
			cfg.Environment = tt.environment

			assert.Equal(t, tt.want, newTestAppInfoService(t, cfg).IsProduction())
		})
	}
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func TestNewServices(t *testing.T) {
	services, err := NewServices(defaultAppConfig(), time.Now(), logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.AppInfoService)
	assert.NotNil(t, services.RuntimeMetricsService)
}

func TestNewServices_UnresolvedConfig(t *testing.T) {
	services, err := NewServices(config.App{}, time.Now(), logger.Nop())

	assert.Nil(t, services)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
