// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedVersion is matched by every [ResolutionError].
	ErrUnsupportedVersion = errors.New("unsupported cipher version")
	// ErrInvalidParams is returned when key-derivation parameters are unusable.
	ErrInvalidParams = errors.New("invalid cipher parameters")
)

// ResolutionError reports that no cipher transform exists for a version tag.
// It is fatal for the single envelope or file being processed.
type ResolutionError struct {
	// Source is "marker" for inline envelopes and "file" for whole-file data.
	Source string
	// Version is the offending version as it appeared in the input.
	Version string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("unable to resolve cipher for %s version %q", e.Source, e.Version)
}

func (e *ResolutionError) Unwrap() error {
	return ErrUnsupportedVersion
}

// IsResolutionError reports whether err is, or wraps, a [ResolutionError].
func IsResolutionError(err error) bool {
	var re *ResolutionError
	return errors.As(err, &re)
}
