// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/kkrgzz/encrypt-x/internal/config"
	"github.com/kkrgzz/encrypt-x/internal/crypto"
	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/internal/session"
	"github.com/kkrgzz/encrypt-x/internal/workers"
	"github.com/kkrgzz/encrypt-x/models"
)

type Services struct {
	EnvelopeService EnvelopeService
	CacheService    CacheService
	DocumentService DocumentService
	FileService     FileService
	AppInfoService  AppInfoService
}

// NewServices wires the daemon services around one session cache and one
// key derivation pool.
func NewServices(cfg *config.StructuredConfig, cache *session.Cache, logger *logger.Logger) (*Services, error) {
	return newServices(cfg.App, cfg.Crypto.CipherParams(), cfg.Crypto.Workers, cfg.EditorSettings(), cache, logger)
}

// NewLocalServices wires the same services for a client that works without
// a daemon.
func NewLocalServices(cfg *config.ClientConfig, version string, cache *session.Cache, logger *logger.Logger) (*Services, error) {
	return newServices(config.App{Version: version}, cfg.CipherParams, cfg.Workers, cfg.Editor, cache, logger)
}

func newServices(app config.App, params models.CipherParams, workerCount int, editor models.EditorSettings, cache *session.Cache, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(app, logger)
	if err != nil {
		return nil, err
	}

	registry := crypto.NewRegistry(params)
	pool := workers.NewPool(workerCount)

	envelopes := NewEnvelopeService(registry, pool, logger)
	caches := NewCacheService(cache, logger)
	documents := NewDocumentValidationService().Wrap(
		NewDocumentService(envelopes, caches, editor, logger),
	)

	return &Services{
		EnvelopeService: envelopes,
		CacheService:    caches,
		DocumentService: documents,
		FileService:     NewFileService(registry, pool, caches, logger),
		AppInfoService:  appInfo,
	}, nil
}
