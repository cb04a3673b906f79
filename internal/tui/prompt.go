// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kkrgzz/encrypt-x/internal/marker"
	"github.com/kkrgzz/encrypt-x/models"
)

type promptField int

const (
	fieldPassword promptField = iota
	fieldConfirm
	fieldHint
)

// promptModel asks for a password. When encrypting it also asks for a
// confirmation (if configured), a hint and whether the envelope is shown in
// the reading view. When decrypting it only shows the envelope's hint.
type promptModel struct {
	defaults models.PromptDefaults

	fields  []promptField
	inputs  []textinput.Model
	focus   int
	visible bool

	errMsg    string
	submitted bool
	cancelled bool
}

func newPromptModel(defaults models.PromptDefaults) *promptModel {
	m := &promptModel{
		defaults: defaults,
		visible:  defaults.ShowInReadingView,
	}

	m.fields = append(m.fields, fieldPassword)
	if defaults.Encrypting {
		if defaults.ConfirmPassword {
			m.fields = append(m.fields, fieldConfirm)
		}
		m.fields = append(m.fields, fieldHint)
	}

	for _, f := range m.fields {
		in := textinput.New()
		in.Width = 40
		in.CharLimit = 256

		switch f {
		case fieldPassword:
			in.Placeholder = "password"
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
			in.SetValue(defaults.Password)
		case fieldConfirm:
			in.Placeholder = "confirm password"
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
			in.SetValue(defaults.Password)
		case fieldHint:
			in.Placeholder = "hint (optional)"
			in.SetValue(defaults.Hint)
		}
		m.inputs = append(m.inputs, in)
	}
	m.inputs[0].Focus()

	return m
}

func (m *promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.Type == tea.KeyCtrlC, key.Matches(keyMsg, keys.esc):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.toggleVisible):
			if m.defaults.Encrypting {
				m.visible = !m.visible
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.focus < len(m.inputs)-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			if m.errMsg = m.validate(); m.errMsg != "" {
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *promptModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *promptModel) value(f promptField) string {
	for i, field := range m.fields {
		if field == f {
			return m.inputs[i].Value()
		}
	}
	return ""
}

func (m *promptModel) validate() string {
	password := m.value(fieldPassword)
	if password == "" {
		return "Password is required"
	}
	if !m.defaults.Encrypting {
		return ""
	}
	if m.defaults.ConfirmPassword && m.value(fieldConfirm) != password {
		return "Passwords don't match"
	}
	if marker.ContainsReserved(m.value(fieldHint)) {
		return "Hint must not contain marker characters"
	}
	return ""
}

func (m *promptModel) result() PromptResult {
	return PromptResult{
		Password: m.value(fieldPassword),
		Hint:     strings.TrimSpace(m.value(fieldHint)),
		Visible:  m.visible,
	}
}

func (m *promptModel) View() string {
	var b strings.Builder

	title := "DECRYPT"
	if m.defaults.Encrypting {
		title = "ENCRYPT"
	}

	if !m.defaults.Encrypting && m.defaults.Hint != "" {
		b.WriteString("Hint: ")
		b.WriteString(hintStyle.Render(m.defaults.Hint))
		b.WriteString("\n\n")
	}

	for i, f := range m.fields {
		switch f {
		case fieldPassword:
			b.WriteString("Password │ ")
		case fieldConfirm:
			b.WriteString("Confirm  │ ")
		case fieldHint:
			b.WriteString("Hint     │ ")
		}
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	hotKeys := "enter: next/submit │ tab: next field │ esc: cancel"
	if m.defaults.Encrypting {
		check := "[ ]"
		if m.visible {
			check = "[x]"
		}
		b.WriteString("\n")
		b.WriteString(check)
		b.WriteString(" show marker in reading view\n")
		hotKeys += " │ ctrl+r: toggle marker"
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}
