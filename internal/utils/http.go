// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kkrgzz/encrypt-x/models"
)

// WriteJSON encodes v before touching w, so an unencodable value still
// yields a clean 500 instead of a half-written body.
func WriteJSON(w http.ResponseWriter, v any, status int) (int, error) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("encode response: %w", err)
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	return w.Write(body)
}

func WriteError(w http.ResponseWriter, message string, status int) {
	_, _ = WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
