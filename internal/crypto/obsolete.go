// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/base64"
)

// obsoleteIV is the IV every version 0 envelope was encrypted with.
var obsoleteIV = []byte{196, 190, 240, 190, 188, 78, 41, 132, 15, 220, 84, 211}

// obsoleteTransform implements version 0. The key is the SHA-256 digest of the
// password and the layout is ciphertext||tag.
type obsoleteTransform struct{}

func newObsoleteTransform() Transform {
	return obsoleteTransform{}
}

func (obsoleteTransform) Version() Version {
	return VersionObsolete
}

func (obsoleteTransform) key(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return sum[:]
}

func (t obsoleteTransform) EncryptToBase64(plaintext, password string) (string, error) {
	sealed, err := seal(t.key(password), obsoleteIV, []byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (t obsoleteTransform) DecryptFromBase64(cipherText, password string) (string, bool) {
	sealed, err := base64.StdEncoding.DecodeString(cipherText)
	if err != nil {
		return "", false
	}

	plaintext, ok := open(t.key(password), obsoleteIV, sealed)
	if !ok {
		return "", false
	}
	return string(plaintext), true
}
