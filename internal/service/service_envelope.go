// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/kkrgzz/encrypt-x/internal/crypto"
	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/internal/marker"
	"github.com/kkrgzz/encrypt-x/internal/workers"
	"github.com/kkrgzz/encrypt-x/models"
)

type envelopeService struct {
	registry crypto.Registry
	pool     *workers.Pool

	logger *logger.Logger
}

func NewEnvelopeService(registry crypto.Registry, pool *workers.Pool, logger *logger.Logger) EnvelopeService {
	return &envelopeService{
		registry: registry,
		pool:     pool,
		logger:   logger,
	}
}

func (s *envelopeService) Analyze(text string) models.AnalysisResult {
	return Analyze(text)
}

func (s *envelopeService) EncryptEnvelope(ctx context.Context, plaintext, hint, password string, visible bool) (string, error) {
	if marker.ContainsReserved(hint) {
		return "", ErrReservedHint
	}

	tr := s.registry.BuildCurrent()

	cipherText, err := encryptOnPool(ctx, s.pool, tr, plaintext, password)
	if err != nil {
		return "", fmt.Errorf("error encrypting envelope: %w", err)
	}

	s.logger.Debug().
		Str("version", tr.Version().String()).
		Bool("visible", visible).
		Int("size", len(cipherText)).
		Msg("envelope encrypted")

	return marker.Encode(cipherText, hint, visible), nil
}

func (s *envelopeService) DecryptEnvelope(ctx context.Context, d models.Decryptable, password string) (string, bool, error) {
	tr, err := s.registry.ResolveForVersion(d.Version)
	if err != nil {
		return "", false, err
	}

	plaintext, ok, err := decryptOnPool(ctx, s.pool, tr, d.Base64CipherText, password)
	if err != nil {
		return "", false, fmt.Errorf("error decrypting envelope: %w", err)
	}

	s.logger.Debug().
		Str("version", tr.Version().String()).
		Bool("ok", ok).
		Msg("envelope decrypt attempted")

	return plaintext, ok, nil
}

func (s *envelopeService) ReadingSegments(text string) []models.Segment {
	return marker.ReadingSegments(text)
}
