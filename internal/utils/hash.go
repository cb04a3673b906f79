// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// SignatureHeader carries the hex HMAC-SHA256 of a request body.
const SignatureHeader = "HashSHA256"

// Hasher computes HMAC-SHA256 signatures with a fixed key. It is safe for
// concurrent use.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey, or nil when hashKey is empty.
// A nil Hasher signs nothing and accepts everything.
func NewHasher(hashKey string) *Hasher {
	if hashKey == "" {
		return nil
	}
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Enabled reports whether h signs anything.
func (h *Hasher) Enabled() bool {
	return h != nil
}

func (h *Hasher) Hash(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// Sign returns the hex signature of data, or "" for a nil Hasher.
func (h *Hasher) Sign(data []byte) string {
	if h == nil {
		return ""
	}
	return hex.EncodeToString(h.Hash(data))
}

// Verify reports whether signature is the hex signature of data. A nil
// Hasher verifies everything.
func (h *Hasher) Verify(data []byte, signature string) bool {
	if h == nil {
		return true
	}
	want, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(h.Hash(data), want)
}
