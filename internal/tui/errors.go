// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/kkrgzz/encrypt-x/internal/adapter"
	"github.com/kkrgzz/encrypt-x/internal/crypto"
	"github.com/kkrgzz/encrypt-x/internal/service"
)

// ErrUserQuit is returned when the user dismisses a prompt.
var ErrUserQuit = errors.New("cancelled by user")

var humanMessages = []struct {
	target  error
	message string
}{
	{service.ErrDecryptionFailed, "Decryption failed: wrong password or damaged text"},
	{service.ErrPasswordRequired, "A password is required"},
	{service.ErrNotDecryptable, "The selection is not an encrypted envelope"},
	{service.ErrNothingToEncrypt, "Nothing to encrypt"},
	{service.ErrUnableToProcess, "Unable to encrypt or decrypt that selection"},
	{service.ErrReservedHint, "Hint must not contain marker characters"},
	{crypto.ErrUnsupportedVersion, "The text was encrypted with an unknown version"},
	{adapter.ErrTooManyAttempts, "Too many attempts, wait a moment and retry"},
	{adapter.ErrIntegrityCheckFailed, "encryptd rejected the request: check the hash key"},
	{adapter.ErrDaemonUnavailable, "encryptd is not reachable"},
	{adapter.ErrTimeout, "encryptd did not answer in time"},
	{ErrUserQuit, "Cancelled"},
}

// HumanizeError returns the message shown to the user for err.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range humanMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "context deadline exceeded") {
		return "encryptd is not reachable"
	}

	return err.Error()
}
