// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kkrgzz/encrypt-x/internal/marker"
	"github.com/kkrgzz/encrypt-x/internal/tui"
	"github.com/kkrgzz/encrypt-x/models"
	"golang.org/x/term"
)

var (
	errPasswordMismatch = errors.New("passwords don't match")
	errReservedHint     = errors.New("hint must not contain marker characters")
)

// linePrompter reads answers line by line. Passwords are read without echo
// when the input is a terminal.
type linePrompter struct {
	reader *bufio.Reader
	out    io.Writer
	result io.Writer

	readPassword func() (string, error)
}

// newLinePrompter prompts on out and prints decrypted text to result.
func newLinePrompter(in *os.File, out, result io.Writer) *linePrompter {
	p := &linePrompter{
		reader: bufio.NewReader(in),
		out:    out,
		result: result,
	}

	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		p.readPassword = func() (string, error) {
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(out)
			return string(b), err
		}
	} else {
		p.readPassword = p.readLine
	}

	return p
}

func (p *linePrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *linePrompter) Prompt(defaults models.PromptDefaults) (tui.PromptResult, error) {
	result := tui.PromptResult{Hint: defaults.Hint, Visible: defaults.ShowInReadingView}

	if !defaults.Encrypting && defaults.Hint != "" {
		fmt.Fprintf(p.out, "Hint: %s\n", defaults.Hint)
	}

	label := "Password: "
	if defaults.Password != "" {
		label = "Password (empty keeps the remembered one): "
	}
	fmt.Fprint(p.out, label)
	password, err := p.readPassword()
	if err != nil {
		return tui.PromptResult{}, fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		password = defaults.Password
	}
	if password == "" {
		return tui.PromptResult{}, tui.ErrUserQuit
	}
	result.Password = password

	if !defaults.Encrypting {
		return result, nil
	}

	if defaults.ConfirmPassword && password != defaults.Password {
		fmt.Fprint(p.out, "Confirm password: ")
		confirm, err := p.readPassword()
		if err != nil {
			return tui.PromptResult{}, fmt.Errorf("failed to read password: %w", err)
		}
		if confirm != password {
			return tui.PromptResult{}, errPasswordMismatch
		}
	}

	if defaults.Hint != "" {
		fmt.Fprintf(p.out, "Hint [%s]: ", defaults.Hint)
	} else {
		fmt.Fprint(p.out, "Hint (optional): ")
	}
	hint, err := p.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return tui.PromptResult{}, err
	}
	if hint = strings.TrimSpace(hint); hint != "" {
		result.Hint = hint
	}
	if marker.ContainsReserved(result.Hint) {
		return tui.PromptResult{}, errReservedHint
	}

	return result, nil
}

// ShowResult prints the plaintext; the line prompter offers no actions.
func (p *linePrompter) ShowResult(plaintext, hint string) (tui.ResultOutcome, error) {
	fmt.Fprintln(p.result, plaintext)
	return tui.ResultOutcome{Action: tui.ActionClose}, nil
}
