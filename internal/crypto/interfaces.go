// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Transform encrypts and decrypts text for one cipher version.
//
// Implementations are stateless and safe for concurrent use.
type Transform interface {
	// Version reports the scheme implemented by the transform.
	Version() Version

	// EncryptToBase64 encrypts plaintext with a key derived from password and
	// returns the standard base64 encoding of the version's binary layout.
	// It fails only when the random source fails.
	EncryptToBase64(plaintext, password string) (string, error)

	// DecryptFromBase64 reverses EncryptToBase64. It never returns an error:
	// malformed input, a wrong password and a failed authentication tag all
	// yield ok == false.
	DecryptFromBase64(cipherText, password string) (plaintext string, ok bool)
}

// Registry resolves transforms with the configured parameters bound.
type Registry interface {
	// ResolveForVersion returns the transform for an inline marker version.
	ResolveForVersion(version int) (Transform, error)

	// ResolveForFileVersion returns the transform for a whole-file version tag.
	ResolveForFileVersion(tag string) (Transform, error)

	// BuildCurrent returns the transform used for all new content.
	BuildCurrent() Transform
}
