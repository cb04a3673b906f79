// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/absfs/absfs"
	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/models"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

type documentStore struct {
	fs   absfs.FileSystem
	root string

	logger *logger.Logger
}

// Option configures a DocumentStore.
type Option func(*documentStore)

// WithRoot places the vault at dir on fs instead of at its "/". dir is a
// native path, as for a host filesystem opened with osfs.
func WithRoot(dir string) Option {
	return func(s *documentStore) {
		s.root = dir
	}
}

// NewDocumentStore returns a DocumentStore on top of fs. Every path handed to
// the store is resolved against the vault root and can never leave it.
func NewDocumentStore(fs absfs.FileSystem, logger *logger.Logger, opts ...Option) DocumentStore {
	s := &documentStore{
		fs:     fs,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// fsPath maps a cleaned vault path onto fs.
func (s *documentStore) fsPath(p string) string {
	if s.root == "" {
		return p
	}
	return filepath.Join(s.root, filepath.FromSlash(p))
}

func (s *documentStore) Read(ctx context.Context, name string) (string, error) {
	b, err := s.read(ctx, name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *documentStore) Write(ctx context.Context, name, text string) error {
	return s.write(ctx, name, []byte(text))
}

func (s *documentStore) ReadFileData(ctx context.Context, name string) (models.FileData, error) {
	b, err := s.read(ctx, name)
	if err != nil {
		return models.FileData{}, err
	}

	var data models.FileData
	if err = json.Unmarshal(b, &data); err != nil {
		return models.FileData{}, fmt.Errorf("%w %q: %w", ErrMalformedFileData, name, err)
	}
	return data, nil
}

func (s *documentStore) WriteFileData(ctx context.Context, name string, data models.FileData) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding %q: %w", name, err)
	}
	return s.write(ctx, name, b)
}

func (s *documentStore) read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := Clean(name)
	if err != nil {
		return nil, err
	}

	info, err := s.fs.Stat(s.fsPath(p))
	if err != nil {
		return nil, notFound(name, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrIsDirectory, name)
	}

	f, err := s.fs.Open(s.fsPath(p))
	if err != nil {
		return nil, notFound(name, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", name, err)
	}

	s.logger.Debug().Str("func", "documentStore.read").Str("path", p).Int("size", len(b)).Msg("document read")
	return b, nil
}

func (s *documentStore) write(ctx context.Context, name string, b []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p, err := Clean(name)
	if err != nil {
		return err
	}

	if dir := path.Dir(p); dir != "/" {
		if err = s.fs.MkdirAll(s.fsPath(dir), dirPerm); err != nil {
			return fmt.Errorf("error creating folder for %q: %w", name, err)
		}
	}

	f, err := s.fs.OpenFile(s.fsPath(p), os.O_RDWR|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("error opening %q: %w", name, err)
	}

	if _, err = f.Write(b); err != nil {
		f.Close()
		return fmt.Errorf("error writing %q: %w", name, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("error closing %q: %w", name, err)
	}

	s.logger.Debug().Str("func", "documentStore.write").Str("path", p).Int("size", len(b)).Msg("document written")
	return nil
}

// Clean resolves a vault-relative path to its absolute form inside the store,
// for example "notes/../a.md" becomes "/a.md". Backslashes are treated as
// separators and ".." never climbs above the vault root.
func Clean(name string) (string, error) {
	name = strings.ReplaceAll(strings.TrimSpace(name), `\`, "/")
	p := path.Clean("/" + name)
	if p == "/" {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, name)
	}
	return p, nil
}

// VaultPath is the vault-relative form of name used for cache scope keys.
func VaultPath(name string) (string, error) {
	p, err := Clean(name)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(p, "/"), nil
}

func notFound(name string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %q", ErrDocumentNotFound, name)
	}
	return fmt.Errorf("error opening %q: %w", name, err)
}
