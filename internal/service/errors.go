// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrNothingToEncrypt is returned for an empty or whitespace-only selection.
	ErrNothingToEncrypt = errors.New("nothing to encrypt")
	// ErrUnableToProcess is returned for a selection that is neither a single
	// envelope nor free of marker tokens.
	ErrUnableToProcess = errors.New("unable to encrypt or decrypt that")
	// ErrNotDecryptable is returned when a decrypt request does not carry
	// exactly one envelope.
	ErrNotDecryptable = errors.New("text is not an encrypted envelope")
	// ErrDecryptionFailed covers a wrong password, tampering and malformed
	// cipher text alike.
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrPasswordRequired is returned when no password was given and none is
	// remembered for the document.
	ErrPasswordRequired = errors.New("password required")
	// ErrReservedHint is returned for a hint that holds part of a marker or
	// hint token; it would break the envelope it is written into.
	ErrReservedHint = errors.New("hint contains marker characters")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
