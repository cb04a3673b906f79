// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrAlreadyEncrypted is returned by encrypt for a selection that is an
	// envelope already.
	ErrAlreadyEncrypted = errors.New("selection is already encrypted, use decrypt")

	ErrInvalidCacheLevel = errors.New("cache level must be vault, parentPath or filename")
)
