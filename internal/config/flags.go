// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns host:port, or "" when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// parseFlags parses the daemon flags in args.
//
// Flags:
//
//	-a                    listen address in format [host]:[port]
//	-c / -config          JSON config file path
//	-k                    HMAC key for body signatures
//	-vault                vault directory
//	-log-level            zerolog level name
//	-iterations           PBKDF2 iterations of the current cipher
//	-salt-size            salt length in bytes
//	-vector-size          IV length in bytes
//	-workers              concurrent key derivations
//	-remember             remember passwords for the session
//	-timeout              minutes a remembered password lives (0 = forever)
//	-level                cache scope: vault, parentPath or filename
//	-confirm-password     ask for the password twice when encrypting
//	-expand-lines         expand selections to whole lines
//	-show-marker          show new envelopes in the reading view
//	-request-timeout      request timeout (e.g. "30s")
//	-decrypt-rate         decrypt attempts per second
//	-decrypt-burst        decrypt attempts allowed at once
//	-origins              comma separated CORS origins
//
// Boolean and numeric session/editor flags are recorded only when given on
// the command line, so lower-priority sources can still supply them.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("encryptd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		serverAddress  NetAddress
		jsonConfigPath string
		hashKey        string
		vaultDir       string
		logLevel       string
		iterations     int
		saltSize       int
		vectorSize     int
		workers        int
		remember       bool
		timeoutMinutes int
		level          string
		confirm        bool
		expandLines    bool
		showMarker     bool
		requestTimeout time.Duration
		decryptRate    float64
		decryptBurst   int
		allowedOrigins string
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "k", "", "HMAC key for body signatures")
	fs.StringVar(&vaultDir, "vault", "", "Vault directory")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.IntVar(&iterations, "iterations", 0, "PBKDF2 iterations")
	fs.IntVar(&saltSize, "salt-size", 0, "Salt size in bytes")
	fs.IntVar(&vectorSize, "vector-size", 0, "IV size in bytes")
	fs.IntVar(&workers, "workers", 0, "Concurrent key derivations")
	fs.BoolVar(&remember, "remember", false, "Remember passwords for the session")
	fs.IntVar(&timeoutMinutes, "timeout", 0, "Minutes a remembered password lives")
	fs.StringVar(&level, "level", "", "Cache scope level")
	fs.BoolVar(&confirm, "confirm-password", false, "Confirm password when encrypting")
	fs.BoolVar(&expandLines, "expand-lines", false, "Expand selections to whole lines")
	fs.BoolVar(&showMarker, "show-marker", false, "Show new envelopes in reading view")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&decryptRate, "decrypt-rate", 0, "Decrypt attempts per second")
	fs.IntVar(&decryptBurst, "decrypt-burst", 0, "Decrypt attempts allowed at once")
	fs.StringVar(&allowedOrigins, "origins", "", "Comma separated CORS origins")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	cfg := &StructuredConfig{
		App: App{
			HashKey:  hashKey,
			LogLevel: logLevel,
		},
		Crypto: Crypto{
			VectorSize: vectorSize,
			SaltSize:   saltSize,
			Iterations: iterations,
			Workers:    workers,
		},
		Session: Session{
			Level: level,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			DecryptRate:    decryptRate,
			DecryptBurst:   decryptBurst,
			AllowedOrigins: splitList(allowedOrigins),
		},
		Storage: Storage{
			VaultDir: vaultDir,
		},
		JSONFilePath: jsonConfigPath,
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "remember":
			cfg.Session.Remember = &remember
		case "timeout":
			cfg.Session.TimeoutMinutes = &timeoutMinutes
		case "confirm-password":
			cfg.Editor.ConfirmPassword = &confirm
		case "expand-lines":
			cfg.Editor.ExpandToWholeLines = &expandLines
		case "show-marker":
			cfg.Editor.ShowMarkerWhenReading = &showMarker
		}
	})

	return cfg, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
