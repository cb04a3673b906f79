// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/models"
)

func (h *Handler) lookupCache(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.lookupCache"

	var req models.CacheLookupRequest
	if !decodeJSON(w, r, fn, &req) {
		return
	}

	writeJSON(w, r, fn, h.services.CacheService.Lookup(req.Path))
}

func (h *Handler) clearCache(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.clearCache"

	cleared := h.services.CacheService.Clear()
	logger.FromRequest(r).Info().Str("func", fn).Int("cleared", cleared).Msg("session cache cleared")

	writeJSON(w, r, fn, models.CacheClearResponse{Cleared: cleared})
}

func (h *Handler) getCacheSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, "*Handler.getCacheSettings", h.services.CacheService.Settings())
}

func (h *Handler) applyCacheSettings(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.applyCacheSettings"

	var req models.CacheSettings
	if !decodeJSON(w, r, fn, &req) {
		return
	}

	h.services.CacheService.Apply(req)

	writeJSON(w, r, fn, h.services.CacheService.Settings())
}
