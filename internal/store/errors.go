// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrInvalidPath is returned for an empty path or one naming the vault
	// root itself.
	ErrInvalidPath = errors.New("invalid document path")

	// ErrDocumentNotFound is returned when the path does not exist in the
	// vault.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrIsDirectory is returned when the path names a folder.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrMalformedFileData is returned when an encrypted file is not valid
	// JSON.
	ErrMalformedFileData = errors.New("malformed encrypted file")
)
