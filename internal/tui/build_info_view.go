// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/kkrgzz/encrypt-x/models"
)

// RenderVersion renders the build information of the client and, when
// known, the version reported by the backend.
func RenderVersion(info models.AppBuildInfo, backend *models.VersionResponse) string {
	var b strings.Builder

	b.WriteString("Application: encrypt-x\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.Version()))
	b.WriteString("\nDate: ")
	b.WriteString(valueOrNA(info.Date()))
	b.WriteString("\nCommit: ")
	b.WriteString(valueOrNA(info.Commit()))

	if backend != nil {
		b.WriteString("\n\nBackend version: ")
		b.WriteString(valueOrNA(backend.Version))
		b.WriteString("\nMarker version: ")
		b.WriteString(strconv.Itoa(backend.MarkerVersion))
		b.WriteString("\nFile format: ")
		b.WriteString(valueOrNA(backend.FileVersion))
	}

	return renderPage("ABOUT", b.String(), "")
}
