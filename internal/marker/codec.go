// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package marker

import (
	"strings"

	"github.com/kkrgzz/encrypt-x/models"
)

// Decode parses text as exactly one envelope.
//
// The text must start with a recognized prefix and end with the suffix of the
// same visibility. Anything between them must be an optional hint block
// followed by cipher text that contains no further tokens.
func Decode(text string) (models.Decryptable, bool) {
	s, ok := matchPrefix(text)
	if !ok {
		return models.Decryptable{}, false
	}

	rest := text[len(s.prefix):]
	suffix := s.suffix()
	if !strings.HasSuffix(rest, suffix) {
		return models.Decryptable{}, false
	}
	content := rest[:len(rest)-len(suffix)]

	if ContainsMarkers(content) {
		return models.Decryptable{}, false
	}

	var hint string
	if strings.HasPrefix(content, Hint) {
		body := content[len(Hint):]
		end := strings.Index(body, Hint)
		if end < 0 {
			return models.Decryptable{}, false
		}
		hint = body[:end]
		content = body[end+len(Hint):]
	}

	if strings.Contains(content, Hint) {
		return models.Decryptable{}, false
	}

	return models.Decryptable{
		Version:           s.version,
		Hint:              hint,
		Base64CipherText:  content,
		ShowInReadingView: s.visible,
	}, true
}

// Encode wraps cipherText in a current-version envelope. The hint block is
// written only for a non-empty hint.
//
// If cipherText already contains a prefix or suffix the input is returned
// unchanged, so a pathological cipher text can never produce a nested
// envelope.
func Encode(cipherText, hint string, visible bool) string {
	if ContainsMarkers(cipherText) {
		return cipherText
	}

	s := defaultHidden
	if visible {
		s = defaultVisible
	}

	var b strings.Builder
	b.Grow(len(s.prefix) + len(hint) + 2*len(Hint) + len(cipherText) + len(s.suffix()))

	b.WriteString(s.prefix)
	if hint != "" {
		b.WriteString(Hint)
		b.WriteString(hint)
		b.WriteString(Hint)
	}
	b.WriteString(cipherText)
	b.WriteString(s.suffix())

	return b.String()
}

func matchPrefix(text string) (scheme, bool) {
	for _, s := range schemes {
		if strings.HasPrefix(text, s.prefix) {
			return s, true
		}
	}
	return scheme{}, false
}
