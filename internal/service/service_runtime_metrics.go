// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/MKhiriev/it-works-on-my-machine/internal/logger"
	"github.com/MKhiriev/it-works-on-my-machine/internal/utils"
	"github.com/MKhiriev/it-works-on-my-machine/models"
)

// processStats reads counters the Go runtime does not track itself.
type processStats interface {
	// ResidentMemory returns the resident set size in bytes.
	ResidentMemory() (uint64, error)
	// CPUTimes returns the accumulated user and system CPU time.
	CPUTimes() (user, system time.Duration, err error)
}

type osProcessStats struct{}

func (osProcessStats) ResidentMemory() (uint64, error) {
	return residentMemory()
}

func (osProcessStats) CPUTimes() (time.Duration, time.Duration, error) {
	return cpuTimes()
}

type runtimeMetricsService struct {
	startedAt time.Time
	now       func() time.Time
	stats     processStats

	logger *logger.Logger
}

// NewRuntimeMetricsService creates a [RuntimeMetricsService] reading the
// counters of the current process.
func NewRuntimeMetricsService(startedAt time.Time, logger *logger.Logger) RuntimeMetricsService {
	return &runtimeMetricsService{
		startedAt: startedAt,
		now:       time.Now,
		stats:     osProcessStats{},
		logger:    logger,
	}
}

func (s *runtimeMetricsService) GetRuntimeMetrics(ctx context.Context) (models.RuntimeMetrics, error) {
	user, system, err := s.stats.CPUTimes()
	if err != nil {
		return models.RuntimeMetrics{}, fmt.Errorf("%w: %w", ErrReadingCPUUsage, err)
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	rss, err := s.stats.ResidentMemory()
	if err != nil {
		// the runtime's view is the closest approximation left
		s.logger.Debug().Err(err).Msg("resident memory unavailable, reporting runtime sys memory")
		rss = mem.Sys
	}

	now := s.now()

	return models.RuntimeMetrics{
		UptimeSeconds: uptimeSeconds(s.startedAt, now),
		MemoryUsage: models.MemoryUsage{
			RSS:        rss,
			HeapTotal:  mem.HeapSys,
			HeapUsed:   mem.HeapAlloc,
			StackInUse: mem.StackInuse,
			Sys:        mem.Sys,
		},
		CPUUsage: models.CPUUsage{
			User:   user.Microseconds(),
			System: system.Microseconds(),
		},
		Timestamp: utils.Timestamp(now),
	}, nil
}
