// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/kkrgzz/encrypt-x/internal/crypto"
	"github.com/kkrgzz/encrypt-x/internal/workers"
)

type encrypted struct {
	cipherText string
	err        error
}

type decrypted struct {
	plaintext string
	ok        bool
}

// encryptOnPool runs the key derivation and encryption of tr on pool.
func encryptOnPool(ctx context.Context, pool *workers.Pool, tr crypto.Transform, plaintext, password string) (string, error) {
	res, err := workers.Do(ctx, pool, func() encrypted {
		ct, err := tr.EncryptToBase64(plaintext, password)
		return encrypted{cipherText: ct, err: err}
	})
	if err != nil {
		return "", err
	}
	return res.cipherText, res.err
}

// decryptOnPool is the decrypting counterpart of encryptOnPool.
func decryptOnPool(ctx context.Context, pool *workers.Pool, tr crypto.Transform, cipherText, password string) (string, bool, error) {
	res, err := workers.Do(ctx, pool, func() decrypted {
		pt, ok := tr.DecryptFromBase64(cipherText, password)
		return decrypted{plaintext: pt, ok: ok}
	})
	if err != nil {
		return "", false, err
	}
	return res.plaintext, res.ok, nil
}
