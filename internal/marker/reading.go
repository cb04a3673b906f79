// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package marker

import (
	"regexp"
	"strings"

	"github.com/kkrgzz/encrypt-x/models"
)

// Glyph is the character pair that delimits inline markers in reading view.
const Glyph = "🔐"

var inlineMarker = regexp.MustCompile(Glyph + `(.*?)` + Glyph)

// ReadingSegments splits text into plain runs and inline markers.
//
// Every non-overlapping, single-line occurrence of 🔐…🔐 becomes a marker
// segment whose Text is the matched substring including both glyphs. Plain
// runs are copied verbatim, so concatenating all segment texts reproduces the
// input. Empty plain runs are omitted.
func ReadingSegments(text string) []models.Segment {
	if !strings.Contains(text, Glyph) {
		if text == "" {
			return nil
		}
		return []models.Segment{{Text: text}}
	}

	matches := inlineMarker.FindAllStringIndex(text, -1)
	segments := make([]models.Segment, 0, 2*len(matches)+1)

	last := 0
	for _, m := range matches {
		if m[0] > last {
			segments = append(segments, models.Segment{Text: text[last:m[0]]})
		}
		segments = append(segments, models.Segment{Text: text[m[0]:m[1]], Marker: true})
		last = m[1]
	}
	if last < len(text) {
		segments = append(segments, models.Segment{Text: text[last:]})
	}

	return segments
}

// ReadingSegmentsNodes applies [ReadingSegments] to independent text nodes,
// such as the text runs of a rendered document tree. Markers never span two
// nodes.
func ReadingSegmentsNodes(nodes []string) [][]models.Segment {
	out := make([][]models.Segment, len(nodes))
	for i, n := range nodes {
		out[i] = ReadingSegments(n)
	}
	return out
}
