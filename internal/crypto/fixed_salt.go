// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"
)

// Version 1 parameters. They are part of the stored format and never change.
const (
	fixedSaltIterations = 1000
	fixedSaltVectorSize = 16
	fixedSaltKeySize    = 32
)

var fixedSalt = []byte("XHWnDAT6ehMVY2zD")

// fixedSaltTransform implements version 1: PBKDF2-HMAC-SHA256 over a
// hard-coded salt, AES-256-GCM with a random 16-byte IV, layout iv||ct||tag.
type fixedSaltTransform struct{}

func newFixedSaltTransform() Transform {
	return fixedSaltTransform{}
}

func (fixedSaltTransform) Version() Version {
	return VersionFixedSalt
}

func (fixedSaltTransform) key(password string) []byte {
	return pbkdf2.Key([]byte(password), fixedSalt, fixedSaltIterations, fixedSaltKeySize, sha256.New)
}

func (t fixedSaltTransform) EncryptToBase64(plaintext, password string) (string, error) {
	iv, err := randomBytes(fixedSaltVectorSize)
	if err != nil {
		return "", err
	}

	sealed, err := seal(t.key(password), iv, []byte(plaintext))
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(append(iv, sealed...)), nil
}

func (t fixedSaltTransform) DecryptFromBase64(cipherText, password string) (string, bool) {
	blob, err := base64.StdEncoding.DecodeString(cipherText)
	if err != nil || len(blob) < fixedSaltVectorSize+gcmTagSize {
		return "", false
	}

	iv, sealed := blob[:fixedSaltVectorSize], blob[fixedSaltVectorSize:]
	plaintext, ok := open(t.key(password), iv, sealed)
	if !ok {
		return "", false
	}
	return string(plaintext), true
}
