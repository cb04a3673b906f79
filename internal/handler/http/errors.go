// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrSignatureMismatch is logged when the HashSHA256 header does not
	// match the request body.
	ErrSignatureMismatch = errors.New("request signature mismatch")

	// ErrThrottled is logged when a decrypt request is rejected by the rate
	// limiter.
	ErrThrottled = errors.New("decrypt request throttled")
)
