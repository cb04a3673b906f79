// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"testing"

	"github.com/kkrgzz/encrypt-x/internal/config"
	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/internal/service"
	"github.com/kkrgzz/encrypt-x/internal/session"
	"github.com/kkrgzz/encrypt-x/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices_RequiresVersion(t *testing.T) {
	_, err := service.NewServices(&config.StructuredConfig{}, session.New(), logger.Nop())

	assert.ErrorIs(t, err, service.ErrVersionIsNotSpecified)
}

func TestNewLocalServices_DocumentFlow(t *testing.T) {
	cfg := &config.ClientConfig{
		Workers:      1,
		CipherParams: fastParams,
		Editor:       editorDefaults,
	}
	services, err := service.NewLocalServices(cfg, "dev", session.New(), logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	enc, err := services.DocumentService.Encrypt(ctx, models.EncryptRequest{
		Path:      "a.md",
		Plaintext: "secret",
		Password:  "pw",
	})
	require.NoError(t, err)

	dec, err := services.DocumentService.Decrypt(ctx, models.DecryptRequest{Path: "b.md", Envelope: enc.Envelope})
	require.NoError(t, err)
	assert.Equal(t, "secret", dec.Plaintext)
	assert.True(t, dec.UsedCache)

	assert.Equal(t, 1, services.CacheService.Clear())

	_, err = services.DocumentService.Decrypt(ctx, models.DecryptRequest{Path: "b.md", Envelope: enc.Envelope})
	assert.ErrorIs(t, err, service.ErrPasswordRequired)

	assert.Equal(t, "dev", services.AppInfoService.GetAppVersion(ctx).Version)
}
