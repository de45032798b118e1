// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"time"

	"github.com/MKhiriev/it-works-on-my-machine/internal/config"
	"github.com/MKhiriev/it-works-on-my-machine/internal/handler"
	"github.com/MKhiriev/it-works-on-my-machine/internal/logger"
	"github.com/MKhiriev/it-works-on-my-machine/internal/server"
	"github.com/MKhiriev/it-works-on-my-machine/internal/service"
	"github.com/MKhiriev/it-works-on-my-machine/models"
)

// set with -ldflags "-X main.buildVersion=..."
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	startedAt := time.Now()

	log := logger.NewLogger(models.ServiceName)
	printBuildInfo(log, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.Log.Level)

	log.Debug().Any("config", cfg).Msg("received configs")

	services, err := service.NewServices(cfg.App, startedAt, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}

func printBuildInfo(log *logger.Logger, info models.AppBuildInfo) {
	log.Info().
		Str("build_version", info.BuildVersion()).
		Str("build_date", info.BuildDate()).
		Str("build_commit", info.BuildCommit()).
		Msg("starting " + models.ServiceName)
}
