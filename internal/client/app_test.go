// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"testing"

	"github.com/absfs/memfs"
	"github.com/kkrgzz/encrypt-x/internal/config"
	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/internal/mock"
	"github.com/kkrgzz/encrypt-x/internal/store"
	"github.com/kkrgzz/encrypt-x/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var editorDefaults = models.EditorSettings{
	ConfirmPassword:       true,
	RememberPassword:      true,
	ShowMarkerWhenReading: true,
}

type testApp struct {
	*App
	backend  *mock.MockBackend
	prompter *mock.MockPrompter
}

func newTestApp(t *testing.T) testApp {
	t.Helper()
	ctrl := gomock.NewController(t)

	fs, err := memfs.NewFS()
	require.NoError(t, err)

	backend := mock.NewMockBackend(ctrl)
	prompter := mock.NewMockPrompter(ctrl)

	a := NewApp(models.NewAppBuildInfo("v1.0.0", "2026-01-01", "abc123"))
	a.cfg = &config.ClientConfig{Editor: editorDefaults}
	a.backend = backend
	a.prompter = prompter
	a.docs = store.NewDocumentStore(fs, logger.Nop())
	a.stderr = &bytes.Buffer{}

	return testApp{App: a, backend: backend, prompter: prompter}
}

func (a testApp) writeDoc(t *testing.T, path, text string) {
	t.Helper()
	require.NoError(t, a.docs.Write(context.Background(), path, text))
}

func (a testApp) readDoc(t *testing.T, path string) string {
	t.Helper()
	text, err := a.docs.Read(context.Background(), path)
	require.NoError(t, err)
	return text
}

// execute runs one command line and returns what it printed on stdout.
func (a testApp) execute(args ...string) (string, error) {
	var out bytes.Buffer

	cmd := a.newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
