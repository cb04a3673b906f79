// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha512"
	"encoding/base64"
	"fmt"

	"github.com/kkrgzz/encrypt-x/models"
	"golang.org/x/crypto/pbkdf2"
)

const tunableKeySize = 32

// tunableTransform implements version 2, the current scheme:
// PBKDF2-HMAC-SHA512 with a random salt, AES-256-GCM with a random IV,
// layout salt||iv||ct||tag.
type tunableTransform struct {
	params models.CipherParams
}

func newTunableTransform(params models.CipherParams) Transform {
	return tunableTransform{params: params}
}

func (tunableTransform) Version() Version {
	return VersionTunable
}

func (t tunableTransform) key(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, t.params.Iterations, tunableKeySize, sha512.New)
}

func (t tunableTransform) EncryptToBase64(plaintext, password string) (string, error) {
	if err := validateParams(t.params); err != nil {
		return "", err
	}

	salt, err := randomBytes(t.params.SaltSize)
	if err != nil {
		return "", err
	}
	iv, err := randomBytes(t.params.VectorSize)
	if err != nil {
		return "", err
	}

	sealed, err := seal(t.key(password, salt), iv, []byte(plaintext))
	if err != nil {
		return "", err
	}

	blob := make([]byte, 0, len(salt)+len(iv)+len(sealed))
	blob = append(blob, salt...)
	blob = append(blob, iv...)
	blob = append(blob, sealed...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

func (t tunableTransform) DecryptFromBase64(cipherText, password string) (string, bool) {
	if validateParams(t.params) != nil {
		return "", false
	}
	saltSize, ivSize := t.params.SaltSize, t.params.VectorSize

	blob, err := base64.StdEncoding.DecodeString(cipherText)
	if err != nil || len(blob) < saltSize+ivSize+gcmTagSize {
		return "", false
	}

	salt := blob[:saltSize]
	iv := blob[saltSize : saltSize+ivSize]
	sealed := blob[saltSize+ivSize:]

	plaintext, ok := open(t.key(password, salt), iv, sealed)
	if !ok {
		return "", false
	}
	return string(plaintext), true
}

func validateParams(p models.CipherParams) error {
	if p.Iterations <= 0 || p.SaltSize <= 0 || p.VectorSize <= 0 {
		return fmt.Errorf("%w: iterations=%d salt=%d iv=%d", ErrInvalidParams, p.Iterations, p.SaltSize, p.VectorSize)
	}
	return nil
}
