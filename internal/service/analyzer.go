// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/kkrgzz/encrypt-x/internal/marker"
	"github.com/kkrgzz/encrypt-x/models"
)

// Analyze classifies a selection.
//
// A text that decodes as one whole envelope can be decrypted. Otherwise it
// can be encrypted only if it contains no fragment of a prefix, suffix or
// hint token, so a selection that cuts through an envelope is never wrapped
// again. Only the empty text is empty; whitespace is ordinary text.
func Analyze(text string) models.AnalysisResult {
	if d, ok := marker.Decode(text); ok {
		return models.AnalysisResult{
			CanDecrypt:  true,
			Decryptable: &d,
		}
	}

	if text == "" {
		return models.AnalysisResult{IsEmpty: true}
	}

	return models.AnalysisResult{
		CanEncrypt: !marker.ContainsReserved(text),
	}
}
