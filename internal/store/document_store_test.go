// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/absfs/memfs"
	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemStore(t *testing.T) DocumentStore {
	t.Helper()
	fs, err := memfs.NewFS()
	require.NoError(t, err)
	return NewDocumentStore(fs, logger.Nop())
}

func TestClean(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "relative", in: "notes/a.md", want: "/notes/a.md"},
		{name: "already absolute", in: "/a.md", want: "/a.md"},
		{name: "dot segments", in: "notes/./b/../a.md", want: "/notes/a.md"},
		{name: "cannot escape", in: "../../etc/passwd", want: "/etc/passwd"},
		{name: "backslashes", in: `notes\a.md`, want: "/notes/a.md"},
		{name: "empty", in: "", wantErr: true},
		{name: "root", in: "/", wantErr: true},
		{name: "climbs to root", in: "a/..", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Clean(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVaultPath(t *testing.T) {
	got, err := VaultPath("/notes//a.md")
	require.NoError(t, err)
	assert.Equal(t, "notes/a.md", got)
}

func TestDocumentStore_ReadWrite(t *testing.T) {
	s := newMemStore(t)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "notes/deep/a.md", "first 🔐β QUJD 🔐"))

	got, err := s.Read(ctx, "notes/deep/a.md")
	require.NoError(t, err)
	assert.Equal(t, "first 🔐β QUJD 🔐", got)

	require.NoError(t, s.Write(ctx, "notes/deep/a.md", "short"))
	got, err = s.Read(ctx, "/notes/deep/a.md")
	require.NoError(t, err)
	assert.Equal(t, "short", got)

	require.NoError(t, s.Write(ctx, "top.md", ""))
	got, err = s.Read(ctx, "top.md")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDocumentStore_ReadErrors(t *testing.T) {
	s := newMemStore(t)
	ctx := context.Background()

	_, err := s.Read(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidPath)

	require.NoError(t, s.Write(ctx, "folder/a.md", "a"))
	_, err = s.Read(ctx, "folder")
	assert.ErrorIs(t, err, ErrIsDirectory)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.Read(cancelled, "folder/a.md")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Write(cancelled, "folder/b.md", "b"), context.Canceled)
}

func TestDocumentStore_FileData(t *testing.T) {
	s := newMemStore(t)
	ctx := context.Background()
	data := models.FileData{Version: "2.0", Hint: "usual", EncodedData: "QUJDRA=="}

	require.NoError(t, s.WriteFileData(ctx, "secret.mdenc", data))

	raw, err := s.Read(ctx, "secret.mdenc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"2.0","hint":"usual","encodedData":"QUJDRA=="}`, raw)

	got, err := s.ReadFileData(ctx, "secret.mdenc")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.NoError(t, s.Write(ctx, "broken.mdenc", "{not json"))
	_, err = s.ReadFileData(ctx, "broken.mdenc")
	assert.ErrorIs(t, err, ErrMalformedFileData)
}

func TestClientStorages_OnDisk(t *testing.T) {
	root := t.TempDir()
	storages, err := NewClientStorages(root, logger.Nop())
	require.NoError(t, err)
	s := storages.DocumentStore
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "notes/a.md", "hello"))
	require.NoError(t, s.Write(ctx, "/top.md", "top"))

	b, err := os.ReadFile(filepath.Join(root, "notes", "a.md"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))

	b, err = os.ReadFile(filepath.Join(root, "top.md"))
	require.NoError(t, err)
	assert.Equal(t, "top", string(b))

	got, err := s.Read(ctx, "notes/a.md")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	_, err = s.Read(ctx, "notes/missing.md")
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	_, err = s.Read(ctx, "notes")
	assert.ErrorIs(t, err, ErrIsDirectory)
}

func TestClientStorages_StaysInsideVault(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "vault")
	require.NoError(t, os.Mkdir(root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(parent, "outside.md"), []byte("outside"), 0o600))

	storages, err := NewClientStorages(root, logger.Nop())
	require.NoError(t, err)

	_, err = storages.DocumentStore.Read(context.Background(), "../outside.md")
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	require.NoError(t, storages.DocumentStore.Write(context.Background(), "../../escape.md", "x"))
	_, err = os.Stat(filepath.Join(root, "escape.md"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(parent, "escape.md"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewClientStorages_Errors(t *testing.T) {
	root := t.TempDir()

	_, err := NewClientStorages(filepath.Join(root, "missing"), logger.Nop())
	assert.ErrorIs(t, err, os.ErrNotExist)

	file := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	_, err = NewClientStorages(file, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestNewClientStorages(t *testing.T) {
	storages, err := NewClientStorages(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, storages.DocumentStore)

	_, err = NewClientStorages(filepath.Join(t.TempDir(), "missing"), logger.Nop())
	assert.Error(t, err)
}
