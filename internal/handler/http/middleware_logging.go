// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/kkrgzz/encrypt-x/internal/logger"
)

// withLogging emits an access line per request. Request bodies carry
// passwords and plaintext, so only the envelope of the exchange is logged.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()

		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger.FromRequest(r).Info().
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Int("status", status).
				Int("size", ww.BytesWritten()).
				Dur("duration", time.Since(started)).
				Send()
		}()

		next.ServeHTTP(ww, r)
	})
}
