// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AppBuildInfo holds the values stamped into a binary with -ldflags.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) Version() string { return a.version }
func (a AppBuildInfo) Date() string    { return a.date }
func (a AppBuildInfo) Commit() string  { return a.commit }

// String renders "version (commit, date)", dropping parts that were not
// stamped. An unstamped build reports "dev".
func (a AppBuildInfo) String() string {
	version := strings.TrimSpace(a.version)
	if version == "" {
		version = "dev"
	}

	var extra []string
	for _, v := range []string{a.commit, a.date} {
		if v = strings.TrimSpace(v); v != "" {
			extra = append(extra, v)
		}
	}
	if len(extra) == 0 {
		return version
	}
	return version + " (" + strings.Join(extra, ", ") + ")"
}
