// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	p := writeJSONFile(t, `{
		"app": {"hash_key": "security_hash", "version": "2.0.0", "log_level": "warn"},
		"crypto": {"vector_size": 12, "salt_size": 16, "iterations": 1000, "workers": 3},
		"session": {"remember_password": false, "timeout_minutes": 15, "level": "filename"},
		"editor": {"confirm_password": false, "expand_to_whole_lines": true},
		"server": {
			"http_address": "127.0.0.1:9000",
			"request_timeout": "45s",
			"decrypt_rate": 1,
			"decrypt_burst": 3,
			"allowed_origins": ["app://obsidian.md"]
		},
		"adapter": {"http_address": "127.0.0.1:9000", "request_timeout": 2000000000},
		"storage": {"vault_dir": "/notes"}
	}`)

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, "security_hash", cfg.App.HashKey)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, Crypto{VectorSize: 12, SaltSize: 16, Iterations: 1000, Workers: 3}, cfg.Crypto)

	require.NotNil(t, cfg.Session.Remember)
	assert.False(t, *cfg.Session.Remember)
	require.NotNil(t, cfg.Session.TimeoutMinutes)
	assert.Equal(t, 15, *cfg.Session.TimeoutMinutes)
	assert.Equal(t, "filename", cfg.Session.Level)

	require.NotNil(t, cfg.Editor.ConfirmPassword)
	assert.False(t, *cfg.Editor.ConfirmPassword)
	assert.Nil(t, cfg.Editor.ShowMarkerWhenReading)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"app://obsidian.md"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/notes", cfg.Storage.VaultDir)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading a json file")
	})

	t.Run("malformed body", func(t *testing.T) {
		_, err := parseJSON(writeJSONFile(t, "{not json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error decoding json configs")
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := parseJSON(writeJSONFile(t, `{"server": {"request_timeout": "soon"}}`))
		require.Error(t, err)
	})
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	b, err := json.Marshal(Duration(2 * time.Hour))
	require.NoError(t, err)
	assert.JSONEq(t, `"2h0m0s"`, string(b))
}
