// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Document is a text document addressed by its vault-relative path.
type Document struct {
	Path string
	Text string
}

// SelectionMode tells how a [Selection] was obtained.
type SelectionMode int

const (
	// SelectionRange is an explicit (possibly line-expanded) selection.
	SelectionRange SelectionMode = iota
	// SelectionEnvelope is the envelope found around an empty selection.
	SelectionEnvelope
	// SelectionInsert means no envelope encloses the cursor: new text is
	// prompted for and inserted at Range.Start.
	SelectionInsert
)

func (m SelectionMode) String() string {
	switch m {
	case SelectionRange:
		return "range"
	case SelectionEnvelope:
		return "envelope"
	case SelectionInsert:
		return "insert"
	}
	return "unknown"
}

// Selection is the part of a document an encrypt/decrypt command acts on.
type Selection struct {
	Range    Range
	Mode     SelectionMode
	Text     string
	Analysis AnalysisResult
}

// EditorSettings are the user preferences that shape the in-place flow.
type EditorSettings struct {
	ConfirmPassword       bool
	RememberPassword      bool
	ExpandToWholeLines    bool
	ShowMarkerWhenReading bool
}

// PromptDefaults prefill the password prompt.
type PromptDefaults struct {
	Encrypting        bool
	ConfirmPassword   bool
	ShowInReadingView bool
	Password          string
	Hint              string
}
