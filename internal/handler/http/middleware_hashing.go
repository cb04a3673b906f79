// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/kkrgzz/encrypt-x/internal/app"
	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/internal/utils"
)

// withHashing rejects requests whose body does not match the HashSHA256
// header. It is a no-op when the daemon runs without a hash key. Requests
// without a body are not signed.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	if !h.hasher.Enabled() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if len(body) > 0 && !h.hasher.Verify(body, r.Header.Get(utils.SignatureHeader)) {
			log.Err(ErrSignatureMismatch).Str("func", "*Handler.withHashing").
				Str("uri", r.RequestURI).
				Msg("hashes are not equal")
			utils.WriteError(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
