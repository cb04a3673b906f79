// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PasswordAndHint is what the session cache remembers for a scope.
// Both fields are empty when nothing is remembered.
type PasswordAndHint struct {
	Password string `json:"password"`
	Hint     string `json:"hint"`
}

// CacheLevel controls how a document path is turned into a cache scope key.
type CacheLevel string

const (
	// LevelVault shares one remembered password across every document.
	LevelVault CacheLevel = "vault"
	// LevelParentPath shares a password between documents in the same folder.
	LevelParentPath CacheLevel = "parentPath"
	// LevelFilename remembers a password per document.
	LevelFilename CacheLevel = "filename"
)

// Valid reports whether l is one of the known levels.
func (l CacheLevel) Valid() bool {
	switch l {
	case LevelVault, LevelParentPath, LevelFilename:
		return true
	}
	return false
}

// CacheSettings is the runtime configuration of the session cache.
type CacheSettings struct {
	Active         bool       `json:"active"`
	TimeoutMinutes int        `json:"timeout_minutes"`
	Level          CacheLevel `json:"level"`
}
