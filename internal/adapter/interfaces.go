// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/kkrgzz/encrypt-x/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Backend performs the cryptographic and session-cache operations for the
// CLI, either by calling an encryptd daemon or in process. Both
// implementations report failures with the sentinel errors of the service
// and crypto packages.
type Backend interface {
	Analyze(ctx context.Context, text string) (models.AnalysisResult, error)
	ReadingSegments(ctx context.Context, text string) ([]models.Segment, error)

	Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error)
	// Decrypt falls back to the remembered password when req.Password is
	// empty.
	Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error)

	EncryptFile(ctx context.Context, req models.FileEncryptRequest) (models.FileData, error)
	DecryptFile(ctx context.Context, req models.FileDecryptRequest) (models.DecryptResponse, error)

	LookupPassword(ctx context.Context, path string) (models.PasswordAndHint, error)
	ClearCache(ctx context.Context) (int, error)
	CacheSettings(ctx context.Context) (models.CacheSettings, error)
	ApplyCacheSettings(ctx context.Context, settings models.CacheSettings) (models.CacheSettings, error)

	Version(ctx context.Context) (models.VersionResponse, error)
}
