// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kkrgzz/encrypt-x/internal/crypto"
	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/internal/marker"
	"github.com/kkrgzz/encrypt-x/internal/mock"
	"github.com/kkrgzz/encrypt-x/internal/service"
	"github.com/kkrgzz/encrypt-x/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var editorDefaults = models.EditorSettings{
	ConfirmPassword:       true,
	RememberPassword:      true,
	ShowMarkerWhenReading: true,
}

type documentDeps struct {
	envelopes *mock.MockEnvelopeService
	cache     *mock.MockCacheService
	svc       service.DocumentService
}

func newDocumentDeps(t *testing.T) documentDeps {
	ctrl := gomock.NewController(t)
	d := documentDeps{
		envelopes: mock.NewMockEnvelopeService(ctrl),
		cache:     mock.NewMockCacheService(ctrl),
	}
	d.svc = service.NewDocumentService(d.envelopes, d.cache, editorDefaults, logger.Nop())
	return d
}

func TestDocumentService_Encrypt_RemembersPassword(t *testing.T) {
	d := newDocumentDeps(t)
	ctx := context.Background()

	d.envelopes.EXPECT().
		EncryptEnvelope(ctx, "pin 1234", "bank", "pw", true).
		Return("🔐β 💡bank💡Q1Q= 🔐", nil)
	d.cache.EXPECT().
		Remember("notes/bank.md", models.PasswordAndHint{Password: "pw", Hint: "bank"})

	resp, err := d.svc.Encrypt(ctx, models.EncryptRequest{
		Path:      "notes/bank.md",
		Plaintext: "pin 1234",
		Hint:      "bank",
		Password:  "pw",
		Visible:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, "🔐β 💡bank💡Q1Q= 🔐", resp.Envelope)
}

func TestDocumentService_Encrypt_ErrorSkipsCache(t *testing.T) {
	d := newDocumentDeps(t)

	d.envelopes.EXPECT().
		EncryptEnvelope(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", context.Canceled)

	_, err := d.svc.Encrypt(context.Background(), models.EncryptRequest{Plaintext: "x", Password: "pw"})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDocumentService_Decrypt(t *testing.T) {
	envelope := marker.Encode("Q1Q=", "bank", false)
	decoded, ok := marker.Decode(envelope)
	require.True(t, ok)

	tests := []struct {
		name    string
		req     models.DecryptRequest
		setup   func(d documentDeps)
		want    models.DecryptResponse
		wantErr error
	}{
		{
			name: "explicit password",
			req:  models.DecryptRequest{Path: "a.md", Envelope: envelope, Password: "pw"},
			setup: func(d documentDeps) {
				d.envelopes.EXPECT().Analyze(envelope).Return(service.Analyze(envelope))
				d.envelopes.EXPECT().DecryptEnvelope(gomock.Any(), decoded, "pw").Return("pin 1234", true, nil)
				d.cache.EXPECT().Remember("a.md", models.PasswordAndHint{Password: "pw", Hint: "bank"})
			},
			want: models.DecryptResponse{Plaintext: "pin 1234", Hint: "bank"},
		},
		{
			name: "remembered password",
			req:  models.DecryptRequest{Path: "a.md", Envelope: envelope},
			setup: func(d documentDeps) {
				d.envelopes.EXPECT().Analyze(envelope).Return(service.Analyze(envelope))
				d.cache.EXPECT().Lookup("a.md").Return(models.PasswordAndHint{Password: "cached"})
				d.envelopes.EXPECT().DecryptEnvelope(gomock.Any(), decoded, "cached").Return("pin 1234", true, nil)
				d.cache.EXPECT().Remember("a.md", models.PasswordAndHint{Password: "cached", Hint: "bank"})
			},
			want: models.DecryptResponse{Plaintext: "pin 1234", Hint: "bank", UsedCache: true},
		},
		{
			name: "nothing remembered",
			req:  models.DecryptRequest{Path: "a.md", Envelope: envelope},
			setup: func(d documentDeps) {
				d.envelopes.EXPECT().Analyze(envelope).Return(service.Analyze(envelope))
				d.cache.EXPECT().Lookup("a.md").Return(models.PasswordAndHint{})
			},
			wantErr: service.ErrPasswordRequired,
		},
		{
			name: "wrong password is not remembered",
			req:  models.DecryptRequest{Path: "a.md", Envelope: envelope, Password: "wrong"},
			setup: func(d documentDeps) {
				d.envelopes.EXPECT().Analyze(envelope).Return(service.Analyze(envelope))
				d.envelopes.EXPECT().DecryptEnvelope(gomock.Any(), decoded, "wrong").Return("", false, nil)
			},
			wantErr: service.ErrDecryptionFailed,
		},
		{
			name: "not an envelope",
			req:  models.DecryptRequest{Envelope: "plain", Password: "pw"},
			setup: func(d documentDeps) {
				d.envelopes.EXPECT().Analyze("plain").Return(service.Analyze("plain"))
			},
			wantErr: service.ErrNotDecryptable,
		},
		{
			name: "unsupported version",
			req:  models.DecryptRequest{Envelope: envelope, Password: "pw"},
			setup: func(d documentDeps) {
				d.envelopes.EXPECT().Analyze(envelope).Return(service.Analyze(envelope))
				d.envelopes.EXPECT().DecryptEnvelope(gomock.Any(), decoded, "pw").
					Return("", false, &crypto.ResolutionError{Source: "marker", Version: "9"})
			},
			wantErr: crypto.ErrUnsupportedVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDocumentDeps(t)
			tt.setup(d)

			got, err := d.svc.Decrypt(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocumentService_Defaults(t *testing.T) {
	d := newDocumentDeps(t)
	d.cache.EXPECT().Lookup("folder/a.md").Return(models.PasswordAndHint{Password: "pw", Hint: "h"})

	got := d.svc.Defaults("folder/a.md", models.Selection{Mode: models.SelectionInsert})

	assert.Equal(t, "pw", got.Password)
	assert.Equal(t, "h", got.Hint)
	assert.True(t, got.ConfirmPassword)
	assert.Equal(t, editorDefaults, d.svc.Settings())
}

func TestDocumentService_DefaultsWithoutRemembering(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockCacheService(ctrl)
	settings := editorDefaults
	settings.RememberPassword = false
	svc := service.NewDocumentService(mock.NewMockEnvelopeService(ctrl), cache, settings, logger.Nop())

	got := svc.Defaults("a.md", models.Selection{Mode: models.SelectionInsert})

	assert.Empty(t, got.Password)
}

func TestDocumentValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockDocumentService(ctrl)
	svc := service.NewDocumentValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.Encrypt(ctx, models.EncryptRequest{Plaintext: "x"})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	_, err = svc.Decrypt(ctx, models.DecryptRequest{Password: "pw"})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	req := models.DecryptRequest{Envelope: "%%🔐β QUJD 🔐%%"}
	inner.EXPECT().Decrypt(ctx, req).Return(models.DecryptResponse{}, errors.New("inner called"))
	_, err = svc.Decrypt(ctx, req)
	assert.EqualError(t, err, "inner called")

	inner.EXPECT().Settings().Return(editorDefaults)
	assert.Equal(t, editorDefaults, svc.Settings())
}
