// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/kkrgzz/encrypt-x/internal/config"
	"github.com/kkrgzz/encrypt-x/internal/handler/http"
	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errHTTPAddressMissing
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Server, cfg.App.HashKey, logger),
	}, nil
}
