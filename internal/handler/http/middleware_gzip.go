// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
)

// compressedTypes are the response content types sent gzip-encoded to
// clients that ask for it.
var compressedTypes = []string{"application/json", "text/plain"}

var inflaters = sync.Pool{New: func() any { return new(gzip.Reader) }}

// withCompression inflates gzip request bodies and leaves response
// encoding to chi's compressor.
func withCompression(next http.Handler) http.Handler {
	return inflateRequest(middleware.Compress(gzip.DefaultCompression, compressedTypes...)(next))
}

func inflateRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr := inflaters.Get().(*gzip.Reader)
		if err := zr.Reset(r.Body); err != nil {
			inflaters.Put(zr)
			http.Error(w, "request body is not valid gzip", http.StatusBadRequest)
			return
		}
		defer func() {
			zr.Close()
			inflaters.Put(zr)
		}()

		r.Body = io.NopCloser(zr)
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}
