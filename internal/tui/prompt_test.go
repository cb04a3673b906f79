// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kkrgzz/encrypt-x/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(m tea.Model, s string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(m tea.Model, t tea.KeyType) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: t})
}

func TestPromptModel_EncryptFields(t *testing.T) {
	m := newPromptModel(models.PromptDefaults{Encrypting: true, ConfirmPassword: true})
	assert.Equal(t, []promptField{fieldPassword, fieldConfirm, fieldHint}, m.fields)

	m = newPromptModel(models.PromptDefaults{Encrypting: true})
	assert.Equal(t, []promptField{fieldPassword, fieldHint}, m.fields)

	m = newPromptModel(models.PromptDefaults{Hint: "h"})
	assert.Equal(t, []promptField{fieldPassword}, m.fields)
	assert.Contains(t, m.View(), "h")
}

func TestPromptModel_Submit(t *testing.T) {
	var model tea.Model = newPromptModel(models.PromptDefaults{
		Encrypting:        true,
		ConfirmPassword:   true,
		ShowInReadingView: true,
	})

	model = typeText(model, "pw")
	model, _ = press(model, tea.KeyEnter)
	model = typeText(model, "pw")
	model, _ = press(model, tea.KeyEnter)
	model = typeText(model, " my hint ")
	model, _ = press(model, tea.KeyCtrlR)
	model, cmd := press(model, tea.KeyEnter)

	m := model.(*promptModel)
	require.NotNil(t, cmd)
	assert.True(t, m.submitted)
	assert.Empty(t, m.errMsg)
	assert.Equal(t, PromptResult{Password: "pw", Hint: "my hint", Visible: false}, m.result())
}

func TestPromptModel_Validation(t *testing.T) {
	tests := []struct {
		name     string
		defaults models.PromptDefaults
		password string
		confirm  string
		hint     string
		wantErr  string
	}{
		{name: "empty password", defaults: models.PromptDefaults{}, wantErr: "Password is required"},
		{name: "mismatch", defaults: models.PromptDefaults{Encrypting: true, ConfirmPassword: true}, password: "a", confirm: "b", wantErr: "Passwords don't match"},
		{name: "reserved hint", defaults: models.PromptDefaults{Encrypting: true}, password: "a", hint: "🔐", wantErr: "Hint must not contain marker characters"},
		{name: "decrypt ok", defaults: models.PromptDefaults{}, password: "a"},
		{name: "encrypt ok", defaults: models.PromptDefaults{Encrypting: true, ConfirmPassword: true}, password: "a", confirm: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newPromptModel(tt.defaults)
			for i, f := range m.fields {
				switch f {
				case fieldPassword:
					m.inputs[i].SetValue(tt.password)
				case fieldConfirm:
					m.inputs[i].SetValue(tt.confirm)
				case fieldHint:
					m.inputs[i].SetValue(tt.hint)
				}
			}
			assert.Equal(t, tt.wantErr, m.validate())
		})
	}
}

func TestPromptModel_PrefilledFromDefaults(t *testing.T) {
	m := newPromptModel(models.PromptDefaults{Encrypting: true, ConfirmPassword: true, Password: "cached", Hint: "remembered"})

	assert.Empty(t, m.validate())
	assert.Equal(t, "cached", m.result().Password)
	assert.Equal(t, "remembered", m.result().Hint)
}

func TestPromptModel_Cancel(t *testing.T) {
	model, cmd := press(newPromptModel(models.PromptDefaults{}), tea.KeyEsc)

	require.NotNil(t, cmd)
	assert.True(t, model.(*promptModel).cancelled)
}

func TestPromptModel_FocusWraps(t *testing.T) {
	m := newPromptModel(models.PromptDefaults{Encrypting: true})

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.focus)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focus)
}
