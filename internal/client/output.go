// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

func success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, color.GreenString("✓")+" "+fmt.Sprintf(format, args...))
}

func notice(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, color.CyanString("→")+" "+fmt.Sprintf(format, args...))
}

// withSpinner runs fn while a spinner with message turns on stderr. The
// spinner is only drawn on a terminal.
func (a *App) withSpinner(message string, fn func() error) error {
	if !a.interactive {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(a.stderr))
	s.Suffix = " " + message
	if err := s.Color("cyan"); err != nil {
		a.logger.Debug().Err(err).Msg("failed to set spinner color")
	}

	s.Start()
	defer s.Stop()

	return fn()
}
