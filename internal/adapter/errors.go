// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrDaemonUnavailable wraps transport failures reaching the daemon.
	ErrDaemonUnavailable = errors.New("encryptd is not reachable")

	// ErrTooManyAttempts is returned when the daemon throttled a decrypt
	// request.
	ErrTooManyAttempts = errors.New("too many decryption attempts")

	// ErrIntegrityCheckFailed is returned when the daemon rejected the body
	// signature, usually because the hash keys differ.
	ErrIntegrityCheckFailed = errors.New("daemon rejected request signature")

	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrTimeout             = errors.New("daemon request timed out")
)
