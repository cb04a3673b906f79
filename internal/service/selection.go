// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"
	"unicode/utf8"

	"github.com/kkrgzz/encrypt-x/internal/marker"
	"github.com/kkrgzz/encrypt-x/models"
)

// Select resolves the part of text an encrypt/decrypt command acts on.
//
// from and to are byte offsets of the user's selection. They are clamped to
// the text, ordered, and moved back onto rune boundaries.
//
//   - With expand set the selection grows to whole lines.
//   - An empty selection picks the envelope around the cursor, provided it
//     starts on or before the cursor line and ends on or after it.
//   - Otherwise an empty selection becomes an insertion point for new text.
//
// A non-insert selection that is blank yields [ErrNothingToEncrypt]; one that
// can be neither encrypted nor decrypted yields [ErrUnableToProcess].
func Select(text string, from, to int, expand bool) (models.Selection, error) {
	from, to = clampOffset(text, from), clampOffset(text, to)
	if from > to {
		from, to = to, from
	}

	sel := models.Selection{Mode: models.SelectionRange}

	switch {
	case expand:
		sel.Range = models.Range{Start: lineStart(text, from), End: lineEnd(text, to)}
	case from == to:
		r, ok := marker.FindEnclosing(text, from)
		if !ok || lineOf(text, from) < lineOf(text, r.Start) || lineOf(text, to) > lineOf(text, r.End) {
			return models.Selection{
				Range: models.Range{Start: from, End: from},
				Mode:  models.SelectionInsert,
			}, nil
		}
		sel.Range = r
		sel.Mode = models.SelectionEnvelope
	default:
		sel.Range = models.Range{Start: from, End: to}
	}

	sel.Text = text[sel.Range.Start:sel.Range.End]
	sel.Analysis = Analyze(sel.Text)

	if strings.TrimSpace(sel.Text) == "" {
		return sel, ErrNothingToEncrypt
	}
	if !sel.Analysis.CanEncrypt && !sel.Analysis.CanDecrypt {
		return sel, ErrUnableToProcess
	}

	return sel, nil
}

// Replace returns text with r substituted by with.
func Replace(text string, r models.Range, with string) string {
	return text[:r.Start] + with + text[r.End:]
}

// PromptDefaults computes what the password prompt is prefilled with.
// cached is the remembered entry for the document; it is ignored unless the
// user wants passwords remembered. An envelope's own hint beats the cached
// one.
func PromptDefaults(settings models.EditorSettings, sel models.Selection, cached models.PasswordAndHint) models.PromptDefaults {
	encrypting := sel.Mode == models.SelectionInsert || sel.Analysis.CanEncrypt

	d := models.PromptDefaults{
		Encrypting:        encrypting,
		ConfirmPassword:   encrypting && settings.ConfirmPassword,
		ShowInReadingView: settings.ShowMarkerWhenReading,
	}

	if sel.Analysis.Decryptable != nil {
		d.Hint = sel.Analysis.Decryptable.Hint
	}

	if settings.RememberPassword {
		d.Password = cached.Password
		if d.Hint == "" {
			d.Hint = cached.Hint
		}
	}

	return d
}

func clampOffset(text string, i int) int {
	if i < 0 {
		return 0
	}
	if i > len(text) {
		return len(text)
	}
	for i > 0 && i < len(text) && !utf8.RuneStart(text[i]) {
		i--
	}
	return i
}

func lineStart(text string, i int) int {
	return strings.LastIndexByte(text[:i], '\n') + 1
}

func lineEnd(text string, i int) int {
	if j := strings.IndexByte(text[i:], '\n'); j >= 0 {
		return i + j
	}
	return len(text)
}

func lineOf(text string, i int) int {
	return strings.Count(text[:i], "\n")
}
