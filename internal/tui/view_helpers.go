// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const pageWidth = 54

var rule = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(strings.Repeat("─", pageWidth))

// renderPage frames body between two rules under a title, with the key
// help underneath. An empty body renders as a single dash.
func renderPage(title, body, keys string) string {
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	parts := []string{titleStyle.Render(title), rule, "", strings.TrimRight(body, "\n"), "", rule}
	if strings.TrimSpace(keys) != "" {
		parts = append(parts, helpStyle.Render(keys))
	}
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return "N/A"
}
