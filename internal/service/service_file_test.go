// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"testing"

	"github.com/kkrgzz/encrypt-x/internal/crypto"
	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/internal/service"
	"github.com/kkrgzz/encrypt-x/internal/session"
	"github.com/kkrgzz/encrypt-x/internal/workers"
	"github.com/kkrgzz/encrypt-x/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileService(cache *session.Cache) service.FileService {
	return service.NewFileService(
		crypto.NewRegistry(fastParams),
		workers.NewPool(2),
		service.NewCacheService(cache, logger.Nop()),
		logger.Nop(),
	)
}

func TestFileService_RoundTrip(t *testing.T) {
	svc := newFileService(session.New())
	ctx := context.Background()

	data, err := svc.EncryptFile(ctx, models.FileEncryptRequest{
		Path:      "notes/diary.mdenc",
		Plaintext: "# Dear diary",
		Hint:      "usual",
		Password:  "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, crypto.CurrentFileVersion, data.Version)
	assert.Equal(t, "usual", data.Hint)
	assert.NotEmpty(t, data.EncodedData)

	got, err := svc.DecryptFile(ctx, models.FileDecryptRequest{Path: "notes/diary.mdenc", Data: data, Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.DecryptResponse{Plaintext: "# Dear diary", Hint: "usual"}, got)
}

func TestFileService_EmptyPlaintext(t *testing.T) {
	svc := newFileService(session.New())
	ctx := context.Background()

	data, err := svc.EncryptFile(ctx, models.FileEncryptRequest{Password: "pw"})
	require.NoError(t, err)

	got, err := svc.DecryptFile(ctx, models.FileDecryptRequest{Data: data, Password: "pw"})
	require.NoError(t, err)
	assert.Empty(t, got.Plaintext)
}

func TestFileService_RemembersPassword(t *testing.T) {
	cache := session.New(session.WithSettings(models.CacheSettings{Active: true, Level: models.LevelParentPath}))
	svc := newFileService(cache)
	ctx := context.Background()

	data, err := svc.EncryptFile(ctx, models.FileEncryptRequest{Path: "notes/a.mdenc", Plaintext: "a", Password: "pw"})
	require.NoError(t, err)

	got, err := svc.DecryptFile(ctx, models.FileDecryptRequest{Path: "notes/b.mdenc", Data: data})
	require.NoError(t, err)
	assert.True(t, got.UsedCache)
	assert.Equal(t, "a", got.Plaintext)

	_, err = svc.DecryptFile(ctx, models.FileDecryptRequest{Path: "other/c.mdenc", Data: data})
	assert.ErrorIs(t, err, service.ErrPasswordRequired)
}

func TestFileService_Errors(t *testing.T) {
	svc := newFileService(session.New())
	ctx := context.Background()

	data, err := svc.EncryptFile(ctx, models.FileEncryptRequest{Plaintext: "a", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.DecryptFile(ctx, models.FileDecryptRequest{Data: data, Password: "wrong"})
	assert.ErrorIs(t, err, service.ErrDecryptionFailed)

	_, err = svc.EncryptFile(ctx, models.FileEncryptRequest{Plaintext: "a"})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	_, err = svc.DecryptFile(ctx, models.FileDecryptRequest{Data: models.FileData{Version: "2.0"}, Password: "pw"})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	unknown := data
	unknown.Version = "3.0"
	_, err = svc.DecryptFile(ctx, models.FileDecryptRequest{Data: unknown, Password: "pw"})
	assert.ErrorIs(t, err, crypto.ErrUnsupportedVersion)
}
