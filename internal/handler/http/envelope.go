// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/kkrgzz/encrypt-x/models"
)

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.analyze"

	var req models.AnalyzeRequest
	if !decodeJSON(w, r, fn, &req) {
		return
	}

	writeJSON(w, r, fn, h.services.EnvelopeService.Analyze(req.Text))
}

func (h *Handler) readingSegments(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.readingSegments"

	var req models.SegmentsRequest
	if !decodeJSON(w, r, fn, &req) {
		return
	}

	segments := h.services.EnvelopeService.ReadingSegments(req.Text)
	if segments == nil {
		segments = []models.Segment{}
	}
	writeJSON(w, r, fn, segments)
}

func (h *Handler) encryptEnvelope(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.encryptEnvelope"

	var req models.EncryptRequest
	if !decodeJSON(w, r, fn, &req) {
		return
	}

	resp, err := h.services.DocumentService.Encrypt(r.Context(), req)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	writeJSON(w, r, fn, resp)
}

func (h *Handler) decryptEnvelope(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.decryptEnvelope"

	var req models.DecryptRequest
	if !decodeJSON(w, r, fn, &req) {
		return
	}

	resp, err := h.services.DocumentService.Decrypt(r.Context(), req)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	writeJSON(w, r, fn, resp)
}
