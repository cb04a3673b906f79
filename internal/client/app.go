// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/kkrgzz/encrypt-x/internal/adapter"
	"github.com/kkrgzz/encrypt-x/internal/config"
	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/internal/service"
	"github.com/kkrgzz/encrypt-x/internal/session"
	"github.com/kkrgzz/encrypt-x/internal/store"
	"github.com/kkrgzz/encrypt-x/internal/tui"
	"github.com/kkrgzz/encrypt-x/models"
	"golang.org/x/term"
)

// App is the encryptx application. Its dependencies are resolved from the
// configuration right before a command runs.
type App struct {
	buildInfo models.AppBuildInfo

	cfg      *config.ClientConfig
	backend  adapter.Backend
	docs     store.DocumentStore
	prompter Prompter
	logger   *logger.Logger

	stdin       *os.File
	stderr      io.Writer
	interactive bool

	flags rootFlags
}

type rootFlags struct {
	configPath string
	daemon     string
	vault      string
	plain      bool
}

var _ Client = (*App)(nil)

// NewApp returns the application for the given build.
func NewApp(buildInfo models.AppBuildInfo) *App {
	return &App{
		buildInfo: buildInfo,
		logger:    logger.Nop(),
		stdin:     os.Stdin,
		stderr:    os.Stderr,
	}
}

// Run executes the command line in os.Args until it finishes or the process
// is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := a.newRootCommand().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(a.stderr, color.RedString("✗")+" "+tui.HumanizeError(err))
		a.logger.Err(err).Str("func", "*App.Run").Msg("command failed")
	}
	return err
}

// setup resolves configuration, storage, backend and prompter. Dependencies
// injected beforehand are kept.
func (a *App) setup() error {
	if a.cfg == nil {
		cfg, err := config.GetClientConfig(a.flags.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.flags.daemon != "" {
		a.cfg.DaemonAddress = a.flags.daemon
	}
	if a.flags.vault != "" {
		a.cfg.VaultDir = a.flags.vault
	}

	if a.backend == nil {
		a.logger = logger.NewClientLogger("encryptx", a.cfg.LogFile)

		backend, err := a.newBackend()
		if err != nil {
			return err
		}
		a.backend = backend
	}

	if a.docs == nil {
		storages, err := store.NewClientStorages(a.cfg.VaultDir, a.logger)
		if err != nil {
			return err
		}
		a.docs = storages.DocumentStore
	}

	if a.prompter == nil {
		stdinTTY := term.IsTerminal(int(a.stdin.Fd()))
		stderrTTY := term.IsTerminal(int(os.Stderr.Fd()))
		a.interactive = stderrTTY

		if stdinTTY && stderrTTY && !a.flags.plain {
			a.prompter = tui.New(a.stdin, os.Stderr)
		} else {
			a.prompter = newLinePrompter(a.stdin, a.stderr, os.Stdout)
		}
	}

	return nil
}

func (a *App) newBackend() (adapter.Backend, error) {
	if a.cfg.DaemonAddress != "" {
		return adapter.NewHTTPBackend(a.cfg, a.logger)
	}

	version := a.buildInfo.Version()
	if version == "" {
		version = "dev"
	}

	cache := session.New(session.WithSettings(a.cfg.Cache))
	services, err := service.NewLocalServices(a.cfg, version, cache, a.logger)
	if err != nil {
		return nil, fmt.Errorf("error creating local services: %w", err)
	}
	return adapter.NewLocalBackend(services), nil
}
