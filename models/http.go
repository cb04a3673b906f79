// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AnalyzeRequest asks the daemon to classify a selection.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// EncryptRequest carries everything needed to produce a new envelope.
//
// Path is the vault-relative document path; it selects the session cache
// scope the password is remembered under.
type EncryptRequest struct {
	Path      string `json:"path"`
	Plaintext string `json:"plaintext" validate:"required"`
	Hint      string `json:"hint"`
	Password  string `json:"password" validate:"required"`
	Visible   bool   `json:"visible"`
}

// EncryptResponse holds the envelope text to insert into the document.
type EncryptResponse struct {
	Envelope string `json:"envelope"`
}

// DecryptRequest asks to decrypt a single envelope.
// An empty Password means "use the remembered password for Path".
type DecryptRequest struct {
	Path     string `json:"path"`
	Envelope string `json:"envelope" validate:"required"`
	Password string `json:"password"`
}

// DecryptResponse is returned when decryption succeeded.
type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
	Hint      string `json:"hint,omitempty"`
	UsedCache bool   `json:"used_cache"`
}

// SegmentsRequest asks for the reading-view rendering of a text.
type SegmentsRequest struct {
	Text string `json:"text"`
}

// FileEncryptRequest encrypts a whole document into the [FileData] format.
type FileEncryptRequest struct {
	Path      string `json:"path"`
	Plaintext string `json:"plaintext"`
	Hint      string `json:"hint"`
	Password  string `json:"password" validate:"required"`
}

// FileDecryptRequest decrypts a [FileData] document.
type FileDecryptRequest struct {
	Path     string   `json:"path"`
	Data     FileData `json:"data"`
	Password string   `json:"password"`
}
