// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound requests before they reach the
// encryption services.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values, optionally
//     scoped to a subset of named fields.
//
// Struct rules live in `validate` tags on the request models and are
// evaluated by go-playground/validator. Failures are reported as the
// sentinel errors of this package so callers can map them without knowing
// the library.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
