// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	// ErrUnsupportedType is returned for values that are not request models
	// and for nil pointers to them.
	ErrUnsupportedType = errors.New("validators: not a request model")
	// ErrUnknownField is returned when a scoped field name does not exist.
	ErrUnknownField = errors.New("validators: no such field")

	ErrRequiredField = errors.New("validators: field is required")
	ErrInvalidField  = errors.New("validators: field failed validation")
)
