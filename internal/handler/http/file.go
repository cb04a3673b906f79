// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/kkrgzz/encrypt-x/models"
)

func (h *Handler) encryptFile(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.encryptFile"

	var req models.FileEncryptRequest
	if !decodeJSON(w, r, fn, &req) {
		return
	}

	data, err := h.services.FileService.EncryptFile(r.Context(), req)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	writeJSON(w, r, fn, data)
}

func (h *Handler) decryptFile(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.decryptFile"

	var req models.FileDecryptRequest
	if !decodeJSON(w, r, fn, &req) {
		return
	}

	resp, err := h.services.FileService.DecryptFile(r.Context(), req)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	writeJSON(w, r, fn, resp)
}
