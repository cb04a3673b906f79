// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/kkrgzz/encrypt-x/internal/app"
	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/internal/utils"
)

// withDecryptLimit bounds the rate of decryption attempts across all
// clients of the daemon.
func (h *Handler) withDecryptLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.Allow() {
			logger.FromRequest(r).Warn().Err(ErrThrottled).Str("uri", r.RequestURI).Send()
			utils.WriteError(w, app.MsgTooManyAttempts, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
