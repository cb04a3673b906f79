// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidFlags wraps command-line parsing failures.
	ErrInvalidFlags = errors.New("invalid command-line flags")
	// ErrInvalidServerConfigs indicates a listen address that cannot be used.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates a daemon address the client cannot
	// dial.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
