// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// resultModel shows decrypted text. It can copy it, ask for the envelope to
// be replaced by the plaintext, or let the user edit the text and save it
// back encrypted.
type resultModel struct {
	plaintext string
	hint      string

	editor  textarea.Model
	editing bool
	status  string

	copyText func(string) error
	outcome  ResultOutcome
}

func newResultModel(plaintext, hint string) *resultModel {
	editor := textarea.New()
	editor.SetWidth(60)
	editor.SetHeight(8)
	editor.ShowLineNumbers = false
	editor.SetValue(plaintext)

	return &resultModel{
		plaintext: plaintext,
		hint:      hint,
		editor:    editor,
		copyText:  clipboard.WriteAll,
	}
}

func (m *resultModel) Init() tea.Cmd {
	return nil
}

func (m *resultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied to clipboard"
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.outcome = ResultOutcome{Action: ActionClose}
			return m, tea.Quit
		}
		if m.editing {
			return m.updateEditor(msg)
		}

		switch {
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopy()
		case key.Matches(msg, keys.decrypt):
			m.outcome = ResultOutcome{Action: ActionDecryptInPlace}
			return m, tea.Quit
		case key.Matches(msg, keys.edit):
			m.editing = true
			m.status = ""
			return m, m.editor.Focus()
		case key.Matches(msg, keys.close):
			m.outcome = ResultOutcome{Action: ActionClose}
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *resultModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.save):
		m.outcome = ResultOutcome{Action: ActionSave, Text: m.editor.Value()}
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.editing = false
		m.editor.Blur()
		m.editor.SetValue(m.plaintext)
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *resultModel) cmdCopy() tea.Cmd {
	text, copyText := m.plaintext, m.copyText
	return func() tea.Msg {
		return copiedMsg{err: copyText(text)}
	}
}

func (m *resultModel) View() string {
	var b strings.Builder

	if m.hint != "" {
		b.WriteString("Hint: ")
		b.WriteString(hintStyle.Render(m.hint))
		b.WriteString("\n\n")
	}

	hotKeys := "c: copy │ d: decrypt in place │ e: edit │ q: close"
	if m.editing {
		b.WriteString(m.editor.View())
		hotKeys = "ctrl+s: save encrypted │ esc: discard changes"
	} else {
		b.WriteString(contentStyle.Render(m.plaintext))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return renderPage("DECRYPTED", b.String(), hotKeys)
}
