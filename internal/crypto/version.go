// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "strconv"

// Version identifies one cipher scheme. The set is closed: every switch over
// Version in this package lists all members.
type Version int

const (
	// VersionObsolete is the original scheme: SHA-256 key, fixed IV.
	VersionObsolete Version = iota
	// VersionFixedSalt is PBKDF2-SHA256 with a fixed salt and random IV.
	VersionFixedSalt
	// VersionTunable is PBKDF2-SHA512 with random salt/IV and tunable parameters.
	VersionTunable
)

// VersionCurrent is the only version used for new content.
const VersionCurrent = VersionTunable

// File format tags of the whole-file [models.FileData] format.
const (
	FileVersionFixedSalt = "1.0"
	FileVersionTunable   = "2.0"

	CurrentFileVersion = FileVersionTunable
)

// Versions lists every supported version, oldest first.
func Versions() []Version {
	return []Version{VersionObsolete, VersionFixedSalt, VersionTunable}
}

// Legacy reports whether content of this version is decrypt-only.
func (v Version) Legacy() bool {
	return v != VersionCurrent
}

func (v Version) String() string {
	switch v {
	case VersionObsolete:
		return "obsolete"
	case VersionFixedSalt:
		return "fixed-salt"
	case VersionTunable:
		return "tunable"
	}
	return "unknown(" + strconv.Itoa(int(v)) + ")"
}

// fileVersion maps a whole-file tag to its scheme. Version 0 never had a
// file format.
func fileVersion(tag string) (Version, bool) {
	switch tag {
	case FileVersionFixedSalt:
		return VersionFixedSalt, true
	case FileVersionTunable:
		return VersionTunable, true
	}
	return 0, false
}
