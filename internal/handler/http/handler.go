// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/kkrgzz/encrypt-x/internal/config"
	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/internal/service"
	"github.com/kkrgzz/encrypt-x/internal/utils"
	"golang.org/x/time/rate"
)

type Handler struct {
	services *service.Services
	hasher   *utils.Hasher
	traceIDs func() string
	limiter  *rate.Limiter
	cfg      config.Server

	logger *logger.Logger
}

// NewHandler returns a handler serving services. Request bodies must be
// signed with hashKey unless it is empty.
func NewHandler(services *service.Services, cfg config.Server, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hasher:   utils.NewHasher(hashKey),
		traceIDs: utils.NewTraceID,
		limiter:  newDecryptLimiter(cfg.DecryptRate, cfg.DecryptBurst),
		cfg:      cfg,
		logger:   logger,
	}
}

// newDecryptLimiter allows perSecond decrypt attempts with bursts of burst.
// A non-positive rate disables throttling.
func newDecryptLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}
