// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command encryptd serves the envelope, file and session cache operations
// over HTTP for editors and the encryptx client.
package main

import (
	"context"
	"os"

	"github.com/kkrgzz/encrypt-x/internal/config"
	"github.com/kkrgzz/encrypt-x/internal/handler"
	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/internal/server"
	"github.com/kkrgzz/encrypt-x/internal/service"
	"github.com/kkrgzz/encrypt-x/internal/session"
	"github.com/kkrgzz/encrypt-x/models"
)

var version, date, commit string

func main() {
	build := models.NewAppBuildInfo(version, date, commit)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("encryptd", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("encryptd", cfg.App.LogLevel)
	log.Info().Str("build", build.String()).Msg("starting encryptd")
	if cfg.App.Version == "" {
		cfg.App.Version = build.Version()
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "dev"
	}

	cache := session.New(session.WithSettings(cfg.Session.CacheSettings()))

	services, err := service.NewServices(cfg, cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
