// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Decryptable is the parsed form of an envelope found in a document.
//
// Version is the marker version (0, 1 or 2) implied by the envelope prefix.
// Hint is empty when the envelope carries no hint block.
// ShowInReadingView is true for envelopes written with the visible prefix and
// suffix pair, i.e. the ones rendered as clickable markers when reading.
type Decryptable struct {
	Version           int    `json:"version"`
	Hint              string `json:"hint,omitempty"`
	Base64CipherText  string `json:"cipher_text"`
	ShowInReadingView bool   `json:"show_in_reading_view"`
}

// AnalysisResult classifies an arbitrary text selection.
//
// CanEncrypt and CanDecrypt are never both true. Decryptable is set only when
// CanDecrypt is true.
type AnalysisResult struct {
	IsEmpty     bool         `json:"is_empty"`
	CanEncrypt  bool         `json:"can_encrypt"`
	CanDecrypt  bool         `json:"can_decrypt"`
	Decryptable *Decryptable `json:"decryptable,omitempty"`
}

// Segment is one run of reading-view output: either plain text copied
// verbatim from the source, or a marker whose Text is the full envelope.
type Segment struct {
	Text   string `json:"text"`
	Marker bool   `json:"marker"`
}

// Range is a half-open byte range [Start, End) inside a document.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Empty reports whether the range covers no bytes.
func (r Range) Empty() bool {
	return r.End <= r.Start
}
