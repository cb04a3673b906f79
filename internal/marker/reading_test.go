// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package marker

import (
	"strings"
	"testing"

	"github.com/kkrgzz/encrypt-x/models"
	"github.com/stretchr/testify/assert"
)

func join(segments []models.Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestReadingSegments(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []models.Segment
	}{
		{name: "empty", text: "", want: nil},
		{
			name: "no markers",
			text: "just text",
			want: []models.Segment{{Text: "just text"}},
		},
		{
			name: "single marker",
			text: "a 🔐β QUJD 🔐 b",
			want: []models.Segment{
				{Text: "a "},
				{Text: "🔐β QUJD 🔐", Marker: true},
				{Text: " b"},
			},
		},
		{
			name: "adjacent markers",
			text: "🔐β A 🔐🔐β B 🔐",
			want: []models.Segment{
				{Text: "🔐β A 🔐", Marker: true},
				{Text: "🔐β B 🔐", Marker: true},
			},
		},
		{
			name: "lone glyph stays plain",
			text: "a 🔐 b",
			want: []models.Segment{{Text: "a 🔐 b"}},
		},
		{
			name: "markers do not cross lines",
			text: "🔐 a\nb 🔐",
			want: []models.Segment{{Text: "🔐 a\nb 🔐"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReadingSegments(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, join(got))
		})
	}
}

func TestReadingSegments_EncodedEnvelopeDecodes(t *testing.T) {
	env := Encode("QUJD", "pet", true)
	segs := ReadingSegments("see " + env + " here")

	var found bool
	for _, s := range segs {
		if !s.Marker {
			continue
		}
		found = true
		d, ok := Decode(s.Text)
		assert.True(t, ok)
		assert.Equal(t, "pet", d.Hint)
	}
	assert.True(t, found)
}

func TestReadingSegmentsNodes(t *testing.T) {
	nodes := []string{"heading", "body 🔐β X 🔐 end", ""}
	got := ReadingSegmentsNodes(nodes)

	assert.Len(t, got, 3)
	assert.Equal(t, []models.Segment{{Text: "heading"}}, got[0])
	assert.Len(t, got[1], 3)
	assert.True(t, got[1][1].Marker)
	assert.Nil(t, got[2])
}
