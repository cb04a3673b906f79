// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		HashKey  string `json:"hash_key"`
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
		LogFile  string `json:"log_file"`
	} `json:"app,omitempty"`

	Crypto struct {
		VectorSize int `json:"vector_size"`
		SaltSize   int `json:"salt_size"`
		Iterations int `json:"iterations"`
		Workers    int `json:"workers"`
	} `json:"crypto,omitempty"`

	Session struct {
		Remember       *bool  `json:"remember_password"`
		TimeoutMinutes *int   `json:"timeout_minutes"`
		Level          string `json:"level"`
	} `json:"session,omitempty"`

	Editor struct {
		ConfirmPassword       *bool `json:"confirm_password"`
		ExpandToWholeLines    *bool `json:"expand_to_whole_lines"`
		ShowMarkerWhenReading *bool `json:"show_marker_when_reading"`
	} `json:"editor,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		DecryptRate    float64  `json:"decrypt_rate"`
		DecryptBurst   int      `json:"decrypt_burst"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		VaultDir string `json:"vault_dir"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			HashKey:  jsonCfg.App.HashKey,
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
			LogFile:  jsonCfg.App.LogFile,
		},
		Crypto: Crypto{
			VectorSize: jsonCfg.Crypto.VectorSize,
			SaltSize:   jsonCfg.Crypto.SaltSize,
			Iterations: jsonCfg.Crypto.Iterations,
			Workers:    jsonCfg.Crypto.Workers,
		},
		Session: Session{
			Remember:       jsonCfg.Session.Remember,
			TimeoutMinutes: jsonCfg.Session.TimeoutMinutes,
			Level:          jsonCfg.Session.Level,
		},
		Editor: Editor{
			ConfirmPassword:       jsonCfg.Editor.ConfirmPassword,
			ExpandToWholeLines:    jsonCfg.Editor.ExpandToWholeLines,
			ShowMarkerWhenReading: jsonCfg.Editor.ShowMarkerWhenReading,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			DecryptRate:    jsonCfg.Server.DecryptRate,
			DecryptBurst:   jsonCfg.Server.DecryptBurst,
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			VaultDir: jsonCfg.Storage.VaultDir,
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from JSON strings like "1h"
// or from a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
