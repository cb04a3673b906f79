// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/kkrgzz/encrypt-x/internal/service"
	"github.com/kkrgzz/encrypt-x/models"
)

type localBackend struct {
	services *service.Services
}

// NewLocalBackend returns a Backend running services in process. Remembered
// passwords live as long as the process.
func NewLocalBackend(services *service.Services) Backend {
	return &localBackend{services: services}
}

func (l *localBackend) Analyze(ctx context.Context, text string) (models.AnalysisResult, error) {
	return l.services.EnvelopeService.Analyze(text), nil
}

func (l *localBackend) ReadingSegments(ctx context.Context, text string) ([]models.Segment, error) {
	return l.services.EnvelopeService.ReadingSegments(text), nil
}

func (l *localBackend) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error) {
	return l.services.DocumentService.Encrypt(ctx, req)
}

func (l *localBackend) Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error) {
	return l.services.DocumentService.Decrypt(ctx, req)
}

func (l *localBackend) EncryptFile(ctx context.Context, req models.FileEncryptRequest) (models.FileData, error) {
	return l.services.FileService.EncryptFile(ctx, req)
}

func (l *localBackend) DecryptFile(ctx context.Context, req models.FileDecryptRequest) (models.DecryptResponse, error) {
	return l.services.FileService.DecryptFile(ctx, req)
}

func (l *localBackend) LookupPassword(ctx context.Context, path string) (models.PasswordAndHint, error) {
	return l.services.CacheService.Lookup(path), nil
}

func (l *localBackend) ClearCache(ctx context.Context) (int, error) {
	return l.services.CacheService.Clear(), nil
}

func (l *localBackend) CacheSettings(ctx context.Context) (models.CacheSettings, error) {
	return l.services.CacheService.Settings(), nil
}

func (l *localBackend) ApplyCacheSettings(ctx context.Context, settings models.CacheSettings) (models.CacheSettings, error) {
	l.services.CacheService.Apply(settings)
	return l.services.CacheService.Settings(), nil
}

func (l *localBackend) Version(ctx context.Context) (models.VersionResponse, error) {
	return l.services.AppInfoService.GetAppVersion(ctx), nil
}
