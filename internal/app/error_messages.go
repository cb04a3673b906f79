// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the messages the encryptd daemon writes into error
// response bodies.
//
// The messages double as the wire vocabulary between the daemon and the
// encryptx CLI: handlers write them and the HTTP adapter maps them back to
// service errors, so changing one is a protocol change.
package app

const (
	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request fails validation,
	// for example an encrypt request without a password.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgNothingToEncrypt is returned for blank selections.
	MsgNothingToEncrypt = "nothing to encrypt"

	// MsgUnableToProcess is returned when the text contains markers or the
	// hint token and therefore cannot be encrypted.
	MsgUnableToProcess = "unable to process the selected text"

	// MsgReservedHint is returned when the hint contains marker or hint
	// characters.
	MsgReservedHint = "hint must not contain marker characters"

	// MsgNotDecryptable is returned when the text is not a complete
	// encrypted envelope.
	MsgNotDecryptable = "text is not an encrypted envelope"

	// MsgUnsupportedVersion is returned for envelopes or files written by a
	// cipher version this build does not know.
	MsgUnsupportedVersion = "unsupported cipher version"

	// MsgPasswordRequired is returned when no password was sent and none is
	// remembered for the document.
	MsgPasswordRequired = "password required"

	// MsgDecryptionFailed is returned for a wrong password or tampered
	// ciphertext. The two cases are indistinguishable.
	MsgDecryptionFailed = "decryption failed"

	// MsgTooManyAttempts is returned when decrypt requests exceed the
	// configured rate.
	MsgTooManyAttempts = "too many decryption attempts"

	// MsgIntegrityCheckFailed is returned when the body signature header is
	// missing or does not match the body.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgInternalServerError is returned for failures the client cannot
	// resolve.
	MsgInternalServerError = "internal server error"
)
