// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package marker

import "strings"

// Hint delimits the optional hint block on both sides.
const Hint = "💡"

// Suffixes.
const (
	SuffixHidden  = " 🔐%%"
	SuffixVisible = " 🔐"
)

// scheme is one prefix with the version and visibility it implies.
type scheme struct {
	prefix  string
	version int
	visible bool
}

// Order matters: decoding and searching try schemes in this order, so a
// hidden prefix is always tested before the visible prefix it ends with.
var schemes = []scheme{
	{prefix: "%%🔐β ", version: 2},
	{prefix: "🔐β ", version: 2, visible: true},
	{prefix: "%%🔐α ", version: 1},
	{prefix: "🔐α ", version: 1, visible: true},
	{prefix: "%%🔐 ", version: 0},
}

var (
	prefixes  = collectPrefixes()
	suffixes  = []string{SuffixHidden, SuffixVisible}
	maxPrefix = longest(prefixes)
)

// Current defaults used by [Encode].
var (
	defaultHidden  = schemes[0]
	defaultVisible = schemes[1]
)

func (s scheme) suffix() string {
	if s.visible {
		return SuffixVisible
	}
	return SuffixHidden
}

func collectPrefixes() []string {
	out := make([]string, 0, len(schemes))
	for _, s := range schemes {
		out = append(out, s.prefix)
	}
	return out
}

func longest(tokens []string) int {
	n := 0
	for _, t := range tokens {
		n = max(n, len(t))
	}
	return n
}

// Prefixes returns the recognized prefixes in matching order.
func Prefixes() []string {
	return append([]string(nil), prefixes...)
}

// Suffixes returns the recognized suffixes in matching order.
func Suffixes() []string {
	return append([]string(nil), suffixes...)
}

// MaxPrefixLen is the byte length of the longest prefix; it bounds the
// cursor-relative search window.
func MaxPrefixLen() int {
	return maxPrefix
}

// ContainsMarkers reports whether any prefix or suffix occurs in text.
func ContainsMarkers(text string) bool {
	for _, p := range prefixes {
		if strings.Contains(text, p) {
			return true
		}
	}
	for _, s := range suffixes {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// ContainsReserved reports whether text holds any piece of a token. Every
// prefix and suffix carries [Glyph] and the hint block is delimited by
// [Hint], so a lone glyph or a cut-off prefix such as "%%🔐" counts.
func ContainsReserved(text string) bool {
	return strings.Contains(text, Glyph) || strings.Contains(text, Hint)
}
