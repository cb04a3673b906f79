// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges, normalizes and validates the configuration
// of the encrypt-x daemon and command line client.
//
// Sources are consulted in priority order; a value set by an earlier source
// is never overridden by a later one:
//  1. Environment variables (optionally seeded from a .env file)
//  2. Command-line flags
//  3. JSON config file
//
// Missing or malformed user settings are replaced by their documented
// defaults instead of failing startup. Only unusable transport settings are
// rejected.
//
// The entry points are [GetStructuredConfig] for the daemon and
// [GetClientConfig] for the client.
package config
