// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

type Server interface {
	// RunServer serves until ctx is done or the process receives SIGTERM,
	// SIGINT or SIGQUIT, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Addr is the address the server listens on once RunServer started.
	Addr() string
}
