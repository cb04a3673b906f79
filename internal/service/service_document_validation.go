// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/kkrgzz/encrypt-x/internal/validators"
	"github.com/kkrgzz/encrypt-x/models"
)

// DocumentValidationService validates requests before handing them to the
// wrapped DocumentService.
type DocumentValidationService struct {
	inner     DocumentService
	validator validators.Validator
}

func NewDocumentValidationService() DocumentServiceWrapper {
	return &DocumentValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *DocumentValidationService) Wrap(inner DocumentService) DocumentService {
	v.inner = inner
	return v
}

func (v *DocumentValidationService) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.EncryptResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Encrypt(ctx, req)
}

func (v *DocumentValidationService) Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldEnvelope); err != nil {
		return models.DecryptResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Decrypt(ctx, req)
}

func (v *DocumentValidationService) Defaults(path string, sel models.Selection) models.PromptDefaults {
	return v.inner.Defaults(path, sel)
}

func (v *DocumentValidationService) Settings() models.EditorSettings {
	return v.inner.Settings()
}
