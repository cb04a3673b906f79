// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/kkrgzz/encrypt-x/models"
)

// StructuredConfig is the top-level configuration container.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
//
// Pointer fields distinguish "not set" from an explicit false or zero, so a
// default of true survives merging.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Crypto  Crypto  `envPrefix:"CRYPTO_"`
	Session Session `envPrefix:"SESSION_"`
	Editor  Editor  `envPrefix:"EDITOR_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional JSON config file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// HashKey signs daemon request bodies with HMAC-SHA256.
	// Empty disables signing.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name. Empty means debug.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the client writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Crypto holds the tunables of the current cipher version.
type Crypto struct {
	// Env: CRYPTO_VECTOR_SIZE
	VectorSize int `env:"VECTOR_SIZE"`
	// Env: CRYPTO_SALT_SIZE
	SaltSize int `env:"SALT_SIZE"`
	// Env: CRYPTO_ITERATIONS
	Iterations int `env:"ITERATIONS"`
	// Workers bounds concurrent key derivations; 0 means one per CPU.
	// Env: CRYPTO_WORKERS
	Workers int `env:"WORKERS"`
}

// Session configures the password cache.
type Session struct {
	// Remember enables the cache.
	// Env: SESSION_REMEMBER
	Remember *bool `env:"REMEMBER"`
	// TimeoutMinutes is the entry lifetime; 0 keeps entries until cleared.
	// Env: SESSION_TIMEOUT_MINUTES
	TimeoutMinutes *int `env:"TIMEOUT_MINUTES"`
	// Level is one of vault, parentPath or filename.
	// Env: SESSION_LEVEL
	Level string `env:"LEVEL"`
}

// Editor holds the preferences of the in-place encrypt/decrypt flow.
type Editor struct {
	// Env: EDITOR_CONFIRM_PASSWORD
	ConfirmPassword *bool `env:"CONFIRM_PASSWORD"`
	// Env: EDITOR_EXPAND_TO_WHOLE_LINES
	ExpandToWholeLines *bool `env:"EXPAND_TO_WHOLE_LINES"`
	// Env: EDITOR_SHOW_MARKER_WHEN_READING
	ShowMarkerWhenReading *bool `env:"SHOW_MARKER_WHEN_READING"`
}

// Server holds the daemon's listener settings.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request, key derivation included.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DecryptRate is the sustained number of decrypt attempts per second.
	// Env: SERVER_DECRYPT_RATE
	DecryptRate float64 `env:"DECRYPT_RATE"`

	// DecryptBurst is the number of decrypt attempts allowed at once.
	// Env: SERVER_DECRYPT_BURST
	DecryptBurst int `env:"DECRYPT_BURST"`

	// AllowedOrigins lists the CORS origins of editor integrations.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter configures the client's connection to a running daemon.
type Adapter struct {
	// HTTPAddress of the daemon. Empty makes the client work in-process.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage locates the documents.
type Storage struct {
	// VaultDir is the root every document path is relative to.
	// Env: STORAGE_VAULT_DIR
	VaultDir string `env:"VAULT_DIR"`
}

// CipherParams returns the crypto tunables in model form.
func (c Crypto) CipherParams() models.CipherParams {
	return models.CipherParams{
		VectorSize: c.VectorSize,
		SaltSize:   c.SaltSize,
		Iterations: c.Iterations,
	}
}

// CacheSettings returns the session settings in model form. Call after
// normalization; unset pointers read as their zero values.
func (s Session) CacheSettings() models.CacheSettings {
	return models.CacheSettings{
		Active:         deref(s.Remember),
		TimeoutMinutes: deref(s.TimeoutMinutes),
		Level:          models.CacheLevel(s.Level),
	}
}

// EditorSettings combines the editor and session preferences the in-place
// flow needs.
func (cfg *StructuredConfig) EditorSettings() models.EditorSettings {
	return models.EditorSettings{
		ConfirmPassword:       deref(cfg.Editor.ConfirmPassword),
		RememberPassword:      deref(cfg.Session.Remember),
		ExpandToWholeLines:    deref(cfg.Editor.ExpandToWholeLines),
		ShowMarkerWhenReading: deref(cfg.Editor.ShowMarkerWhenReading),
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// GetStructuredConfig loads, merges, normalizes and validates the daemon
// configuration. args are the command-line arguments without the program
// name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
