// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/kkrgzz/encrypt-x/internal/config"
	"github.com/kkrgzz/encrypt-x/internal/handler"
	"github.com/kkrgzz/encrypt-x/internal/logger"
)

type server struct {
	httpServer *httpServer

	mu   sync.Mutex
	addr string

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoListenAddress
	}

	return newServer(handlers.HTTP.Init(), cfg, logger), nil
}

func newServer(h http.Handler, cfg config.Server, logger *logger.Logger) *server {
	return &server{
		httpServer: newHTTPServer(h, cfg, logger),
		addr:       cfg.HTTPAddress,
		logger:     logger,
	}
}

func (s *server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	l, err := s.httpServer.listen()
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.httpServer.server.Addr, err)
	}

	s.mu.Lock()
	s.addr = l.Addr().String()
	s.mu.Unlock()

	served := make(chan error, 1)
	go func() {
		served <- s.httpServer.serve(l)
	}()
	s.logger.Info().Str("address", s.Addr()).Msg("Launching HTTP server")

	select {
	case err = <-served:
		return err
	case <-ctx.Done():
	}

	s.httpServer.shutdown()
	err = <-served
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
