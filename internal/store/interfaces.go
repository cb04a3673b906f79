// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/kkrgzz/encrypt-x/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentStore reads and writes documents inside the vault. Paths are
// vault-relative and use "/" separators, the same form the session cache
// derives its scope keys from.
type DocumentStore interface {
	Read(ctx context.Context, path string) (string, error)
	Write(ctx context.Context, path, text string) error
	ReadFileData(ctx context.Context, path string) (models.FileData, error)
	WriteFileData(ctx context.Context, path string, data models.FileData) error
}
