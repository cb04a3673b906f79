// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/kkrgzz/encrypt-x/models"
)

// EnvelopeService is the core facade over the marker codec and the cipher
// registry.
type EnvelopeService interface {
	// Analyze classifies a selection. See [Analyze].
	Analyze(text string) models.AnalysisResult

	// EncryptEnvelope encrypts plaintext with the current cipher version and
	// wraps it in an envelope. Key derivation runs on the worker pool.
	EncryptEnvelope(ctx context.Context, plaintext, hint, password string, visible bool) (string, error)

	// DecryptEnvelope decrypts a decoded envelope. A wrong password or
	// corrupted cipher text is reported as ok == false, not as an error; err
	// is set only for an unsupported version or a cancelled ctx.
	DecryptEnvelope(ctx context.Context, d models.Decryptable, password string) (plaintext string, ok bool, err error)

	// ReadingSegments splits text for the reading view.
	ReadingSegments(text string) []models.Segment
}

// CacheService remembers passwords for the session.
type CacheService interface {
	Lookup(path string) models.PasswordAndHint
	Remember(path string, entry models.PasswordAndHint)
	// Clear forgets everything and reports how many entries were dropped.
	Clear() int
	// Apply changes the cache settings. Stored entries are kept.
	Apply(settings models.CacheSettings)
	Settings() models.CacheSettings
}

// DocumentService runs the encrypt and decrypt flows of a document, keeping
// the session cache in step.
type DocumentService interface {
	// Encrypt produces an envelope for req.Plaintext and remembers the
	// password for req.Path.
	Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error)

	// Decrypt decrypts req.Envelope. An empty password means the remembered
	// one. The password is remembered again only on success.
	Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error)

	// Defaults returns the prefilled prompt values for sel in the document
	// at path.
	Defaults(path string, sel models.Selection) models.PromptDefaults

	// Settings returns the editor preferences the service was built with.
	Settings() models.EditorSettings
}

// FileService encrypts whole documents into the [models.FileData] format.
type FileService interface {
	EncryptFile(ctx context.Context, req models.FileEncryptRequest) (models.FileData, error)
	DecryptFile(ctx context.Context, req models.FileDecryptRequest) (models.DecryptResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// DocumentServiceWrapper decorates a DocumentService, for example with
// request validation.
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService
}
