// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/kkrgzz/encrypt-x/internal/app"
	"github.com/kkrgzz/encrypt-x/internal/crypto"
	"github.com/kkrgzz/encrypt-x/internal/service"
	"github.com/kkrgzz/encrypt-x/models"
)

var messageErrorMap = map[string]error{
	app.MsgInvalidJSON:          service.ErrInvalidDataProvided,
	app.MsgInvalidDataProvided:  service.ErrInvalidDataProvided,
	app.MsgNothingToEncrypt:     service.ErrNothingToEncrypt,
	app.MsgUnableToProcess:      service.ErrUnableToProcess,
	app.MsgNotDecryptable:       service.ErrNotDecryptable,
	app.MsgReservedHint:         service.ErrReservedHint,
	app.MsgUnsupportedVersion:   crypto.ErrUnsupportedVersion,
	app.MsgPasswordRequired:     service.ErrPasswordRequired,
	app.MsgDecryptionFailed:     service.ErrDecryptionFailed,
	app.MsgTooManyAttempts:      ErrTooManyAttempts,
	app.MsgIntegrityCheckFailed: ErrIntegrityCheckFailed,
	app.MsgInternalServerError:  ErrInternalServerError,
}

// mapHTTPError turns a non-2xx daemon response back into the error the
// daemon's service layer returned.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var reply models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &reply); err == nil && reply.Error != "" {
		if target, ok := messageErrorMap[reply.Error]; ok {
			return fmt.Errorf("encryptd: %w", target)
		}
		body = reply.Error
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, resp.Request.URL)
	case http.StatusGatewayTimeout:
		return ErrTimeout
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
