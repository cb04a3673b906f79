// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/kkrgzz/encrypt-x/internal/crypto"
	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/internal/validators"
	"github.com/kkrgzz/encrypt-x/internal/workers"
	"github.com/kkrgzz/encrypt-x/models"
)

type fileService struct {
	registry  crypto.Registry
	pool      *workers.Pool
	cache     CacheService
	validator validators.Validator

	logger *logger.Logger
}

func NewFileService(registry crypto.Registry, pool *workers.Pool, cache CacheService, logger *logger.Logger) FileService {
	return &fileService{
		registry:  registry,
		pool:      pool,
		cache:     cache,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}

func (s *fileService) EncryptFile(ctx context.Context, req models.FileEncryptRequest) (models.FileData, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.FileData{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	tr := s.registry.BuildCurrent()
	cipherText, err := encryptOnPool(ctx, s.pool, tr, req.Plaintext, req.Password)
	if err != nil {
		return models.FileData{}, fmt.Errorf("error encrypting file %q: %w", req.Path, err)
	}

	s.cache.Remember(req.Path, models.PasswordAndHint{Password: req.Password, Hint: req.Hint})
	s.logger.Debug().Str("path", req.Path).Str("version", crypto.CurrentFileVersion).Msg("file encrypted")

	return models.FileData{
		Version:     crypto.CurrentFileVersion,
		Hint:        req.Hint,
		EncodedData: cipherText,
	}, nil
}

func (s *fileService) DecryptFile(ctx context.Context, req models.FileDecryptRequest) (models.DecryptResponse, error) {
	if err := s.validator.Validate(ctx, req.Data); err != nil {
		return models.DecryptResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	tr, err := s.registry.ResolveForFileVersion(req.Data.Version)
	if err != nil {
		return models.DecryptResponse{}, err
	}

	password, usedCache := req.Password, false
	if password == "" {
		password = s.cache.Lookup(req.Path).Password
		if password == "" {
			return models.DecryptResponse{}, ErrPasswordRequired
		}
		usedCache = true
	}

	plaintext, ok, err := decryptOnPool(ctx, s.pool, tr, req.Data.EncodedData, password)
	if err != nil {
		return models.DecryptResponse{}, fmt.Errorf("error decrypting file %q: %w", req.Path, err)
	}
	if !ok {
		return models.DecryptResponse{}, ErrDecryptionFailed
	}

	s.cache.Remember(req.Path, models.PasswordAndHint{Password: password, Hint: req.Data.Hint})

	return models.DecryptResponse{
		Plaintext: plaintext,
		Hint:      req.Data.Hint,
		UsedCache: usedCache,
	}, nil
}
