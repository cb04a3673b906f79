// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"time"

	"github.com/kkrgzz/encrypt-x/models"
)

// Defaults applied by normalize.
const (
	DefaultServerAddress   = "localhost:8787"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultAdapterTimeout  = 10 * time.Second
	DefaultDecryptRate     = 5.0
	DefaultDecryptBurst    = 10
	DefaultTimeoutMinutes  = 30
	MaxTimeoutMinutes      = 120
	DefaultVaultDir        = "."
	DefaultRememberSession = true
)

// normalize replaces missing or malformed values with their defaults.
func (cfg *StructuredConfig) normalize() {
	if cfg.Crypto.VectorSize <= 0 {
		cfg.Crypto.VectorSize = models.DefaultVectorSize
	}
	if cfg.Crypto.SaltSize <= 0 {
		cfg.Crypto.SaltSize = models.DefaultSaltSize
	}
	if cfg.Crypto.Iterations <= 0 {
		cfg.Crypto.Iterations = models.DefaultIterations
	}
	if cfg.Crypto.Workers < 0 {
		cfg.Crypto.Workers = 0
	}

	if cfg.Session.Remember == nil {
		cfg.Session.Remember = ptr(DefaultRememberSession)
	}
	switch t := cfg.Session.TimeoutMinutes; {
	case t == nil || *t < 0:
		cfg.Session.TimeoutMinutes = ptr(DefaultTimeoutMinutes)
	case *t > MaxTimeoutMinutes:
		cfg.Session.TimeoutMinutes = ptr(MaxTimeoutMinutes)
	}
	if !models.CacheLevel(cfg.Session.Level).Valid() {
		cfg.Session.Level = string(models.LevelVault)
	}

	if cfg.Editor.ConfirmPassword == nil {
		cfg.Editor.ConfirmPassword = ptr(true)
	}
	if cfg.Editor.ExpandToWholeLines == nil {
		cfg.Editor.ExpandToWholeLines = ptr(false)
	}
	if cfg.Editor.ShowMarkerWhenReading == nil {
		cfg.Editor.ShowMarkerWhenReading = ptr(true)
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultServerAddress
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.DecryptRate <= 0 {
		cfg.Server.DecryptRate = DefaultDecryptRate
	}
	if cfg.Server.DecryptBurst <= 0 {
		cfg.Server.DecryptBurst = DefaultDecryptBurst
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}

	if cfg.Storage.VaultDir == "" {
		cfg.Storage.VaultDir = DefaultVaultDir
	}
}

// validate rejects transport settings that cannot work. It runs after
// normalize, so only explicit bad values reach it.
func (cfg *StructuredConfig) validate() error {
	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if cfg.Adapter.HTTPAddress != "" {
		if _, _, err := net.SplitHostPort(cfg.Adapter.HTTPAddress); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
		}
	}

	return nil
}

func ptr[T any](v T) *T {
	return &v
}
