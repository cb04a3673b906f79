// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/kkrgzz/encrypt-x/models"
)

// ClientConfig is the view of the configuration the command line client
// needs.
type ClientConfig struct {
	// HashKey signs requests to the daemon.
	HashKey string
	// LogFile receives the client log.
	LogFile string

	// DaemonAddress is the daemon to talk to. Empty means in-process.
	DaemonAddress  string
	RequestTimeout time.Duration

	// VaultDir is the root of document paths.
	VaultDir string
	// Workers bounds in-process key derivations.
	Workers int

	CipherParams models.CipherParams
	Cache        models.CacheSettings
	Editor       models.EditorSettings
}

// GetClientConfig builds the client view from the .env file, the environment
// and the JSON file at path (may be empty). Client flags are owned by the
// command tree and never reach this builder.
func GetClientConfig(path string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withJSONFile(path).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.ClientConfig(), nil
}

// ClientConfig maps the fields relevant to the client runtime.
func (cfg *StructuredConfig) ClientConfig() *ClientConfig {
	return &ClientConfig{
		HashKey:        cfg.App.HashKey,
		LogFile:        cfg.App.LogFile,
		DaemonAddress:  cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		VaultDir:       cfg.Storage.VaultDir,
		Workers:        cfg.Crypto.Workers,
		CipherParams:   cfg.Crypto.CipherParams(),
		Cache:          cfg.Session.CacheSettings(),
		Editor:         cfg.EditorSettings(),
	}
}
