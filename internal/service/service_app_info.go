// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/it-works-on-my-machine/internal/config"
	"github.com/MKhiriev/it-works-on-my-machine/internal/logger"
	"github.com/MKhiriev/it-works-on-my-machine/internal/utils"
	"github.com/MKhiriev/it-works-on-my-machine/models"
)

type appInfoService struct {
	cfg       config.App
	startedAt time.Time
	now       func() time.Time

	logger *logger.Logger
}

// NewAppInfoService creates an [AppInfoService] reporting the values of cfg.
// cfg must already carry its defaults: an empty version is rejected.
func NewAppInfoService(cfg config.App, startedAt time.Time, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		cfg:       cfg,
		startedAt: startedAt,
		now:       time.Now,
		logger:    logger,
	}, nil
}

func (s *appInfoService) GetServiceInfo(ctx context.Context) models.ServiceInfo {
	return models.ServiceInfo{
		Service:     models.ServiceName,
		Version:     s.cfg.Version,
		Status:      models.StatusRunning,
		Environment: s.cfg.Environment,
		Timestamp:   utils.Timestamp(s.now()),
	}
}

func (s *appInfoService) GetHealth(ctx context.Context) models.HealthStatus {
	now := s.now()

	return models.HealthStatus{
		Status:      models.StatusHealthy,
		Message:     models.HealthMessage,
		Uptime:      uptimeSeconds(s.startedAt, now),
		Timestamp:   utils.Timestamp(now),
		Version:     s.cfg.Version,
		Environment: s.cfg.Environment,
	}
}

func (s *appInfoService) GetReadiness(ctx context.Context) models.ReadinessStatus {
	return models.ReadinessStatus{
		Status:    models.StatusReady,
		Timestamp: utils.Timestamp(s.now()),
	}
}

func (s *appInfoService) GetVersion(ctx context.Context) models.VersionInfo {
	buildDate := s.cfg.BuildDate
	if buildDate == "" {
		buildDate = utils.Timestamp(s.now())
	}

	return models.VersionInfo{
		Version:   s.cfg.Version,
		Build:     s.cfg.BuildNumber,
		Commit:    s.cfg.GitCommit,
		BuildDate: buildDate,
	}
}

func (s *appInfoService) IsProduction() bool {
	return s.cfg.IsProduction()
}
