// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the encryptd daemon.
//
// The daemon listens on localhost and owns the process-wide session password
// cache, so several editors or CLI invocations can share remembered
// passwords. Request tracing, access logging, compression, CORS, body
// signatures and decrypt throttling are handled here before requests reach
// the service layer.
package http
