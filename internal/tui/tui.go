// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kkrgzz/encrypt-x/models"
)

// TUI runs the interactive password prompt and result view on a terminal.
type TUI struct {
	in  io.Reader
	out io.Writer
}

// New returns a TUI reading keys from in and drawing on out.
func New(in io.Reader, out io.Writer) *TUI {
	return &TUI{in: in, out: out}
}

func (t *TUI) run(model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model,
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
		tea.WithAltScreen(),
	).Run()
}

// Prompt asks for a password prefilled from defaults. It returns
// [ErrUserQuit] when the prompt is dismissed.
func (t *TUI) Prompt(defaults models.PromptDefaults) (PromptResult, error) {
	finalModel, err := t.run(newPromptModel(defaults))
	if err != nil {
		return PromptResult{}, err
	}

	m, ok := finalModel.(*promptModel)
	if !ok {
		return PromptResult{}, tea.ErrProgramKilled
	}
	if m.cancelled || !m.submitted {
		return PromptResult{}, ErrUserQuit
	}

	return m.result(), nil
}

// ShowResult displays decrypted text and reports what the user chose to do
// with it.
func (t *TUI) ShowResult(plaintext, hint string) (ResultOutcome, error) {
	finalModel, err := t.run(newResultModel(plaintext, hint))
	if err != nil {
		return ResultOutcome{}, err
	}

	m, ok := finalModel.(*resultModel)
	if !ok {
		return ResultOutcome{}, tea.ErrProgramKilled
	}

	return m.outcome, nil
}
