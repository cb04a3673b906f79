// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/kkrgzz/encrypt-x/models"
)

// Field names accepted by [RequestValidator.Validate] for scoping.
const (
	FieldPlaintext = "Plaintext"
	FieldPassword  = "Password"
	FieldEnvelope  = "Envelope"
	FieldData      = "Data"
)

// RequestValidator validates the daemon request models.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a [Validator] for the request models.
func NewRequestValidator() Validator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EncryptRequest, *models.EncryptRequest,
		models.DecryptRequest, *models.DecryptRequest,
		models.FileEncryptRequest, *models.FileEncryptRequest,
		models.FileDecryptRequest, *models.FileDecryptRequest,
		models.FileData, *models.FileData:
		return v.validateStruct(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	if reflect.ValueOf(obj).Kind() == reflect.Ptr && reflect.ValueOf(obj).IsNil() {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		if err := checkFields(obj, fields); err != nil {
			return err
		}
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}

	return translate(err)
}

// checkFields rejects names the struct does not have; the library would
// silently skip them.
func checkFields(obj any, fields []string) error {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for _, f := range fields {
		if _, ok := t.FieldByName(f); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidField, err)
	}

	fe := validationErrors[0]
	if fe.Tag() == "required" {
		return fmt.Errorf("%w: %s", ErrRequiredField, fe.Namespace())
	}
	return fmt.Errorf("%w: %s (%s)", ErrInvalidField, fe.Namespace(), fe.Tag())
}
