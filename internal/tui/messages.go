// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// PromptResult is what the user entered in the password prompt.
type PromptResult struct {
	Password string
	Hint     string
	// Visible asks for an envelope shown as a marker in the reading view.
	Visible bool
}

// ResultAction is the way the user left the result view.
type ResultAction int

const (
	ActionClose ResultAction = iota
	// ActionDecryptInPlace replaces the envelope with its plaintext.
	ActionDecryptInPlace
	// ActionSave re-encrypts the edited text into the envelope.
	ActionSave
)

// ResultOutcome is returned by the result view. Text is the edited
// plaintext for ActionSave.
type ResultOutcome struct {
	Action ResultAction
	Text   string
}

type copiedMsg struct {
	err error
}
