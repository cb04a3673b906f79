// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/kkrgzz/encrypt-x/internal/utils"
)

// maxBodySize bounds request bodies; whole documents travel through
// /api/file/encrypt.
const maxBodySize = 8 << 20

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if len(h.cfg.AllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding", "Accept-Encoding", utils.SignatureHeader, utils.TraceIDHeader},
			ExposedHeaders: []string{utils.TraceIDHeader},
			MaxAge:         300,
		}))
	}
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(middleware.RequestSize(maxBodySize))
	router.Use(withCompression)
	router.Use(h.withHashing)

	router.Get("/api/version", h.version)

	router.Post("/api/analyze", h.analyze)
	router.Post("/api/reading/segments", h.readingSegments)
	router.Post("/api/envelope/encrypt", h.encryptEnvelope)
	router.Post("/api/file/encrypt", h.encryptFile)

	// decryption attempts are throttled
	router.Group(func(r chi.Router) {
		r.Use(h.withDecryptLimit)
		r.Post("/api/envelope/decrypt", h.decryptEnvelope)
		r.Post("/api/file/decrypt", h.decryptFile)
	})

	router.Post("/api/cache/lookup", h.lookupCache)
	router.Delete("/api/cache", h.clearCache)
	router.Get("/api/cache/settings", h.getCacheSettings)
	router.Put("/api/cache/settings", h.applyCacheSettings)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
