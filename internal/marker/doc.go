// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package marker encodes and decodes the textual envelopes that hold
// encrypted fragments inside a document.
//
// An envelope has the form
//
//	PREFIX [💡HINT💡] BASE64 SUFFIX
//
// where the prefix selects the cipher version and, together with the suffix,
// whether the fragment is hidden as a comment or shown as a marker when the
// document is read. Parsing never fails with an error: text that is not a
// well-formed envelope is simply reported as a non-match.
package marker
