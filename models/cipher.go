// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Default tunables for the current cipher version.
const (
	DefaultVectorSize = 16
	DefaultSaltSize   = 16
	DefaultIterations = 600000
)

// CipherParams holds the user-tunable key-derivation parameters. Only the
// current cipher version reads them; legacy versions have fixed parameters.
type CipherParams struct {
	// VectorSize is the AES-GCM IV length in bytes.
	VectorSize int `json:"vector_size"`
	// SaltSize is the PBKDF2 salt length in bytes.
	SaltSize int `json:"salt_size"`
	// Iterations is the PBKDF2 iteration count.
	Iterations int `json:"iterations"`
}

// DefaultCipherParams returns the parameters used when nothing is configured.
func DefaultCipherParams() CipherParams {
	return CipherParams{
		VectorSize: DefaultVectorSize,
		SaltSize:   DefaultSaltSize,
		Iterations: DefaultIterations,
	}
}

// FileData is the persisted whole-file encryption format.
//
// Version is the file format tag ("1.0" or "2.0"), which is distinct from the
// inline marker version numbers.
type FileData struct {
	Version     string `json:"version" validate:"required"`
	Hint        string `json:"hint"`
	EncodedData string `json:"encodedData" validate:"required"`
}
