// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/kkrgzz/encrypt-x/internal/tui"
	"github.com/kkrgzz/encrypt-x/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// Prompter asks the user for passwords and shows decrypted text.
type Prompter interface {
	Prompt(defaults models.PromptDefaults) (tui.PromptResult, error)
	ShowResult(plaintext, hint string) (tui.ResultOutcome, error)
}
