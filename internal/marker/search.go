// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package marker

import "github.com/kkrgzz/encrypt-x/models"

// FindEnclosing locates the envelope around a cursor byte offset.
//
// The prefix search walks backwards from cursor+MaxPrefixLen() and returns the
// start of the first prefix found; the suffix search walks forwards from
// cursor-MaxPrefixLen()+1, never earlier than the end of that prefix, and
// returns the end of the first suffix found. At each offset every token
// variant is tried in table order. A space before a visible prefix reads as
// " 🔐", which is why the suffix may not overlap the prefix.
//
// Nested envelopes are not supported: the nearest tokens win regardless of
// pairing, and the caller is expected to run [Decode] on the result.
func FindEnclosing(text string, cursor int) (models.Range, bool) {
	cursor = min(max(cursor, 0), len(text))

	start, size, ok := findPrefixStart(text, cursor)
	if !ok {
		return models.Range{}, false
	}
	end, ok := findSuffixEnd(text, max(cursor-maxPrefix+1, start+size))
	if !ok {
		return models.Range{}, false
	}

	return models.Range{Start: start, End: end}, true
}

func findPrefixStart(text string, cursor int) (start, size int, ok bool) {
	from := min(cursor+maxPrefix, len(text))

	for offset := from; offset >= 0; offset-- {
		for _, p := range prefixes {
			s := offset - len(p)
			if s < 0 {
				continue
			}
			if text[s:offset] == p {
				return s, len(p), true
			}
		}
	}
	return 0, 0, false
}

func findSuffixEnd(text string, from int) (int, bool) {
	for offset := from; offset <= len(text); offset++ {
		for _, s := range suffixes {
			end := offset + len(s)
			if end > len(text) {
				continue
			}
			if text[offset:end] == s {
				return end, true
			}
		}
	}
	return 0, false
}
