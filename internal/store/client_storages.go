// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/absfs/osfs"
	"github.com/kkrgzz/encrypt-x/internal/logger"
)

// ClientStorages groups the storage the CLI works with.
type ClientStorages struct {
	// DocumentStore reads and writes documents below the vault folder.
	DocumentStore DocumentStore
}

// NewClientStorages opens the vault folder vaultDir on the host filesystem.
// The folder must exist.
func NewClientStorages(vaultDir string, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Str("vault", vaultDir).Msg("opening vault...")

	root, err := vaultRoot(vaultDir)
	if err != nil {
		return nil, fmt.Errorf("error opening vault %q: %w", vaultDir, err)
	}

	fs, err := osfs.NewFS()
	if err != nil {
		return nil, fmt.Errorf("error opening vault %q: %w", vaultDir, err)
	}

	return &ClientStorages{
		DocumentStore: NewDocumentStore(fs, logger, WithRoot(root)),
	}, nil
}

func vaultRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", &os.PathError{Op: "open", Path: abs, Err: ErrInvalidPath}
	}
	return abs, nil
}
