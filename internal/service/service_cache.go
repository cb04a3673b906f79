// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/internal/session"
	"github.com/kkrgzz/encrypt-x/models"
)

type cacheService struct {
	cache *session.Cache

	logger *logger.Logger
}

func NewCacheService(cache *session.Cache, logger *logger.Logger) CacheService {
	return &cacheService{
		cache:  cache,
		logger: logger,
	}
}

func (s *cacheService) Lookup(path string) models.PasswordAndHint {
	return s.cache.Get(path)
}

func (s *cacheService) Remember(path string, entry models.PasswordAndHint) {
	s.cache.Put(entry, path)
	s.logger.Debug().Str("scope", s.cache.ScopeKey(path)).Msg("password remembered")
}

func (s *cacheService) Clear() int {
	n := s.cache.Clear()
	s.logger.Info().Int("cleared", n).Msg("session password cache cleared")
	return n
}

func (s *cacheService) Apply(settings models.CacheSettings) {
	s.cache.SetActive(settings.Active)
	s.cache.SetAutoExpireMinutes(settings.TimeoutMinutes)
	s.cache.SetLevel(settings.Level)

	applied := s.cache.Settings()
	s.logger.Info().
		Bool("active", applied.Active).
		Int("timeout_minutes", applied.TimeoutMinutes).
		Str("level", string(applied.Level)).
		Msg("session cache settings applied")
}

func (s *cacheService) Settings() models.CacheSettings {
	return s.cache.Settings()
}
