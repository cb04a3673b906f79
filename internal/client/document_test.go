// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"strconv"
	"strings"
	"testing"

	"github.com/kkrgzz/encrypt-x/internal/marker"
	"github.com/kkrgzz/encrypt-x/internal/service"
	"github.com/kkrgzz/encrypt-x/internal/tui"
	"github.com/kkrgzz/encrypt-x/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const docPath = "notes/a.md"

func TestEncrypt_Selection(t *testing.T) {
	a := newTestApp(t)
	a.writeDoc(t, docPath, "hello secret world")

	a.backend.EXPECT().LookupPassword(gomock.Any(), docPath).Return(models.PasswordAndHint{}, nil)
	a.prompter.EXPECT().
		Prompt(models.PromptDefaults{Encrypting: true, ConfirmPassword: true, ShowInReadingView: true}).
		Return(tui.PromptResult{Password: "pw", Hint: "h", Visible: true}, nil)
	a.backend.EXPECT().
		Encrypt(gomock.Any(), models.EncryptRequest{Path: docPath, Plaintext: "secret", Hint: "h", Password: "pw", Visible: true}).
		Return(models.EncryptResponse{Envelope: "ENV"}, nil)

	out, err := a.execute("encrypt", docPath, "--from", "6", "--to", "12")

	require.NoError(t, err)
	assert.Equal(t, "hello ENV world", a.readDoc(t, docPath))
	assert.Contains(t, out, "Encrypted 6 characters in notes/a.md")
}

func TestEncrypt_PrefillsRememberedPassword(t *testing.T) {
	a := newTestApp(t)
	a.writeDoc(t, docPath, "secret")

	a.backend.EXPECT().LookupPassword(gomock.Any(), docPath).Return(models.PasswordAndHint{Password: "cached", Hint: "ch"}, nil)
	a.prompter.EXPECT().
		Prompt(models.PromptDefaults{Encrypting: true, ConfirmPassword: true, ShowInReadingView: true, Password: "cached", Hint: "ch"}).
		Return(tui.PromptResult{Password: "cached", Hint: "ch"}, nil)
	a.backend.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(models.EncryptResponse{Envelope: "ENV"}, nil)

	_, err := a.execute("encrypt", docPath, "--from", "0", "--to", "6")

	require.NoError(t, err)
	assert.Equal(t, "ENV", a.readDoc(t, docPath))
}

func TestEncrypt_Insert(t *testing.T) {
	a := newTestApp(t)
	a.writeDoc(t, docPath, "abc")

	a.backend.EXPECT().LookupPassword(gomock.Any(), docPath).Return(models.PasswordAndHint{}, nil)
	a.prompter.EXPECT().Prompt(gomock.Any()).Return(tui.PromptResult{Password: "pw"}, nil)
	a.backend.EXPECT().
		Encrypt(gomock.Any(), models.EncryptRequest{Path: docPath, Plaintext: "new", Password: "pw"}).
		Return(models.EncryptResponse{Envelope: "ENV"}, nil)

	_, err := a.execute("encrypt", docPath, "--from", "3", "--to", "3", "--text", "new")

	require.NoError(t, err)
	assert.Equal(t, "abcENV", a.readDoc(t, docPath))
}

func TestEncrypt_Rejected(t *testing.T) {
	env := marker.Encode(testCipherText, "", true)

	tests := []struct {
		name string
		doc  string
		args []string
		want error
	}{
		{name: "insert without text", doc: "abc", args: []string{"--from", "1", "--to", "1"}, want: service.ErrNothingToEncrypt},
		{name: "insert with markers", doc: "abc", args: []string{"--text", marker.Glyph}, want: service.ErrUnableToProcess},
		{name: "blank selection", doc: "a   b", args: []string{"--from", "1", "--to", "4"}, want: service.ErrNothingToEncrypt},
		{name: "already encrypted", doc: env, args: []string{"--from", cursorIn(env), "--to", cursorIn(env)}, want: ErrAlreadyEncrypted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			a.writeDoc(t, docPath, tt.doc)

			_, err := a.execute(append([]string{"encrypt", docPath}, tt.args...)...)

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.doc, a.readDoc(t, docPath))
		})
	}
}

func TestEncrypt_PromptCancelled(t *testing.T) {
	a := newTestApp(t)
	a.writeDoc(t, docPath, "secret")

	a.backend.EXPECT().LookupPassword(gomock.Any(), docPath).Return(models.PasswordAndHint{}, nil)
	a.prompter.EXPECT().Prompt(gomock.Any()).Return(tui.PromptResult{}, tui.ErrUserQuit)

	_, err := a.execute("encrypt", docPath, "--to", "6")

	assert.ErrorIs(t, err, tui.ErrUserQuit)
	assert.Equal(t, "secret", a.readDoc(t, docPath))
}

const testCipherText = "Q0lQSEVS"

// cursorIn returns a cursor offset inside the cipher text of doc.
func cursorIn(doc string) string {
	return strconv.Itoa(strings.Index(doc, testCipherText) + 2)
}

func envelopeDoc() (doc, env string, cursor string) {
	env = marker.Encode(testCipherText, "h", true)
	doc = "x " + env + " y"
	return doc, env, cursorIn(doc)
}

func TestDecrypt_CachedPasswordInPlace(t *testing.T) {
	a := newTestApp(t)
	doc, env, cursor := envelopeDoc()
	a.writeDoc(t, docPath, doc)

	a.backend.EXPECT().LookupPassword(gomock.Any(), docPath).Return(models.PasswordAndHint{Password: "pw"}, nil)
	a.backend.EXPECT().
		Decrypt(gomock.Any(), models.DecryptRequest{Path: docPath, Envelope: env, Password: "pw"}).
		Return(models.DecryptResponse{Plaintext: "secret", Hint: "h"}, nil)

	_, err := a.execute("decrypt", docPath, "--from", cursor, "--to", cursor, "--in-place")

	require.NoError(t, err)
	assert.Equal(t, "x secret y", a.readDoc(t, docPath))
}

func TestDecrypt_PromptThenSave(t *testing.T) {
	a := newTestApp(t)
	doc, env, cursor := envelopeDoc()
	a.writeDoc(t, docPath, doc)

	a.backend.EXPECT().LookupPassword(gomock.Any(), docPath).Return(models.PasswordAndHint{Password: "old"}, nil).Times(2)
	a.backend.EXPECT().
		Decrypt(gomock.Any(), models.DecryptRequest{Path: docPath, Envelope: env, Password: "old"}).
		Return(models.DecryptResponse{}, service.ErrDecryptionFailed)
	a.prompter.EXPECT().
		Prompt(models.PromptDefaults{ShowInReadingView: true, Hint: "h"}).
		Return(tui.PromptResult{Password: "pw"}, nil)
	a.backend.EXPECT().
		Decrypt(gomock.Any(), models.DecryptRequest{Path: docPath, Envelope: env, Password: "pw"}).
		Return(models.DecryptResponse{Plaintext: "secret", Hint: "h"}, nil)
	a.prompter.EXPECT().ShowResult("secret", "h").Return(tui.ResultOutcome{Action: tui.ActionSave, Text: "edited"}, nil)
	a.backend.EXPECT().
		Encrypt(gomock.Any(), models.EncryptRequest{Path: docPath, Plaintext: "edited", Hint: "h", Password: "pw", Visible: true}).
		Return(models.EncryptResponse{Envelope: "ENV2"}, nil)

	out, err := a.execute("decrypt", docPath, "--from", cursor, "--to", cursor)

	require.NoError(t, err)
	assert.Equal(t, "x ENV2 y", a.readDoc(t, docPath))
	assert.Contains(t, out, "Saved notes/a.md at 2")
}

func TestDecrypt_ResultActions(t *testing.T) {
	tests := []struct {
		name    string
		outcome tui.ResultOutcome
		want    func(doc string) string
	}{
		{name: "close", outcome: tui.ResultOutcome{Action: tui.ActionClose}, want: func(doc string) string { return doc }},
		{name: "decrypt in place", outcome: tui.ResultOutcome{Action: tui.ActionDecryptInPlace}, want: func(string) string { return "x secret y" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			a.cfg.Editor.RememberPassword = false
			doc, _, cursor := envelopeDoc()
			a.writeDoc(t, docPath, doc)

			a.prompter.EXPECT().Prompt(gomock.Any()).Return(tui.PromptResult{Password: "pw"}, nil)
			a.backend.EXPECT().Decrypt(gomock.Any(), gomock.Any()).Return(models.DecryptResponse{Plaintext: "secret"}, nil)
			a.prompter.EXPECT().ShowResult("secret", "").Return(tt.outcome, nil)

			_, err := a.execute("decrypt", docPath, "--from", cursor, "--to", cursor)

			require.NoError(t, err)
			assert.Equal(t, tt.want(doc), a.readDoc(t, docPath))
		})
	}
}

func TestDecrypt_SaveEmptyText(t *testing.T) {
	a := newTestApp(t)
	a.cfg.Editor.RememberPassword = false
	doc, _, cursor := envelopeDoc()
	a.writeDoc(t, docPath, doc)

	a.prompter.EXPECT().Prompt(gomock.Any()).Return(tui.PromptResult{Password: "pw"}, nil)
	a.backend.EXPECT().Decrypt(gomock.Any(), gomock.Any()).Return(models.DecryptResponse{Plaintext: "secret"}, nil)
	a.prompter.EXPECT().ShowResult("secret", "").Return(tui.ResultOutcome{Action: tui.ActionSave, Text: "  "}, nil)

	_, err := a.execute("decrypt", docPath, "--from", cursor, "--to", cursor)

	assert.ErrorIs(t, err, service.ErrNothingToEncrypt)
	assert.Equal(t, doc, a.readDoc(t, docPath))
}

func TestDecrypt_NotAnEnvelope(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		args []string
	}{
		{name: "plain selection", doc: "plain text", args: []string{"--from", "0", "--to", "5"}},
		{name: "cursor outside envelope", doc: "plain text", args: []string{"--from", "2", "--to", "2"}},
		{name: "blank selection", doc: "a   b", args: []string{"--from", "1", "--to", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			a.writeDoc(t, docPath, tt.doc)

			_, err := a.execute(append([]string{"decrypt", docPath}, tt.args...)...)

			assert.ErrorIs(t, err, service.ErrNotDecryptable)
		})
	}
}

func TestDecrypt_WrongPassword(t *testing.T) {
	a := newTestApp(t)
	a.cfg.Editor.RememberPassword = false
	doc, _, cursor := envelopeDoc()
	a.writeDoc(t, docPath, doc)

	a.prompter.EXPECT().Prompt(gomock.Any()).Return(tui.PromptResult{Password: "bad"}, nil)
	a.backend.EXPECT().Decrypt(gomock.Any(), gomock.Any()).Return(models.DecryptResponse{}, service.ErrDecryptionFailed)

	_, err := a.execute("decrypt", docPath, "--from", cursor, "--to", cursor)

	assert.ErrorIs(t, err, service.ErrDecryptionFailed)
	assert.Equal(t, doc, a.readDoc(t, docPath))
}

func TestAnalyze(t *testing.T) {
	a := newTestApp(t)
	doc, _, cursor := envelopeDoc()
	a.writeDoc(t, docPath, doc)

	out, err := a.execute("analyze", docPath, "--from", cursor, "--to", cursor)

	require.NoError(t, err)
	assert.Contains(t, out, "mode:        envelope")
	assert.Contains(t, out, "can decrypt: true")
	assert.Contains(t, out, "version:     2")
	assert.Contains(t, out, "hint:        h")
}

func TestAnalyze_Whitespace(t *testing.T) {
	a := newTestApp(t)
	a.writeDoc(t, docPath, "a   b")

	out, err := a.execute("analyze", docPath, "--from", "1", "--to", "4")

	require.NoError(t, err)
	assert.Contains(t, out, "empty:       false")
	assert.Contains(t, out, "can encrypt: true")
}

func TestAnalyze_LoneGlyph(t *testing.T) {
	a := newTestApp(t)
	a.writeDoc(t, docPath, "a 🔐 b")

	out, err := a.execute("analyze", docPath, "--from", "0", "--to", "8")

	require.NoError(t, err)
	assert.Contains(t, out, "can encrypt: false")
	assert.Contains(t, out, "can decrypt: false")
}

func TestMissingDocument(t *testing.T) {
	a := newTestApp(t)

	_, err := a.execute("decrypt", "missing.md")

	assert.Error(t, err)
}
