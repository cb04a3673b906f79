// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/models"
)

type documentService struct {
	envelopes EnvelopeService
	cache     CacheService
	settings  models.EditorSettings

	logger *logger.Logger
}

func NewDocumentService(envelopes EnvelopeService, cache CacheService, settings models.EditorSettings, logger *logger.Logger) DocumentService {
	return &documentService{
		envelopes: envelopes,
		cache:     cache,
		settings:  settings,
		logger:    logger,
	}
}

func (s *documentService) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error) {
	envelope, err := s.envelopes.EncryptEnvelope(ctx, req.Plaintext, req.Hint, req.Password, req.Visible)
	if err != nil {
		return models.EncryptResponse{}, err
	}

	s.cache.Remember(req.Path, models.PasswordAndHint{Password: req.Password, Hint: req.Hint})

	return models.EncryptResponse{Envelope: envelope}, nil
}

func (s *documentService) Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error) {
	analysis := s.envelopes.Analyze(req.Envelope)
	if !analysis.CanDecrypt {
		return models.DecryptResponse{}, ErrNotDecryptable
	}
	d := *analysis.Decryptable

	password, usedCache := req.Password, false
	if password == "" {
		password = s.cache.Lookup(req.Path).Password
		if password == "" {
			return models.DecryptResponse{}, ErrPasswordRequired
		}
		usedCache = true
	}

	plaintext, ok, err := s.envelopes.DecryptEnvelope(ctx, d, password)
	if err != nil {
		return models.DecryptResponse{}, err
	}
	if !ok {
		s.logger.Debug().Str("path", req.Path).Bool("used_cache", usedCache).Msg("decryption failed")
		return models.DecryptResponse{}, ErrDecryptionFailed
	}

	s.cache.Remember(req.Path, models.PasswordAndHint{Password: password, Hint: d.Hint})

	return models.DecryptResponse{
		Plaintext: plaintext,
		Hint:      d.Hint,
		UsedCache: usedCache,
	}, nil
}

func (s *documentService) Defaults(path string, sel models.Selection) models.PromptDefaults {
	var cached models.PasswordAndHint
	if s.settings.RememberPassword {
		cached = s.cache.Lookup(path)
	}
	return PromptDefaults(s.settings, sel, cached)
}

func (s *documentService) Settings() models.EditorSettings {
	return s.settings
}
