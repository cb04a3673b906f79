// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/kkrgzz/encrypt-x/internal/config"
	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/internal/utils"
	"github.com/kkrgzz/encrypt-x/models"
)

type httpBackend struct {
	client   *utils.HTTPClient
	hasher   *utils.Hasher
	traceIDs func() string

	logger *logger.Logger
}

// NewHTTPBackend returns a Backend talking to the daemon at
// cfg.DaemonAddress. Request bodies are signed with cfg.HashKey when set.
func NewHTTPBackend(cfg *config.ClientConfig, logger *logger.Logger) (Backend, error) {
	baseURL, err := normalizeBaseURL(cfg.DaemonAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpBackend{
		client:   utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		hasher:   utils.NewHasher(cfg.HashKey),
		traceIDs: utils.NewTraceID,
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// do sends in (when not nil) as a signed JSON body and decodes the response
// into out (when not nil).
func (h *httpBackend) do(ctx context.Context, method, path string, in, out any) error {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = h.traceIDs()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(utils.TraceIDHeader, traceID)

	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("error encoding %s request: %w", path, err)
		}
		req.SetBody(body)
		if h.hasher.Enabled() {
			req.SetHeader(utils.SignatureHeader, h.hasher.Sign(body))
		}
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %w", ErrDaemonUnavailable, err)
	}

	h.logger.Debug().
		Str("func", "*httpBackend.do").
		Str("trace_id", traceID).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Send()

	return mapHTTPError(resp)
}

func (h *httpBackend) Analyze(ctx context.Context, text string) (models.AnalysisResult, error) {
	var out models.AnalysisResult
	err := h.do(ctx, "POST", "/api/analyze", models.AnalyzeRequest{Text: text}, &out)
	return out, err
}

func (h *httpBackend) ReadingSegments(ctx context.Context, text string) ([]models.Segment, error) {
	var out []models.Segment
	err := h.do(ctx, "POST", "/api/reading/segments", models.SegmentsRequest{Text: text}, &out)
	return out, err
}

func (h *httpBackend) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error) {
	var out models.EncryptResponse
	err := h.do(ctx, "POST", "/api/envelope/encrypt", req, &out)
	return out, err
}

func (h *httpBackend) Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error) {
	var out models.DecryptResponse
	err := h.do(ctx, "POST", "/api/envelope/decrypt", req, &out)
	return out, err
}

func (h *httpBackend) EncryptFile(ctx context.Context, req models.FileEncryptRequest) (models.FileData, error) {
	var out models.FileData
	err := h.do(ctx, "POST", "/api/file/encrypt", req, &out)
	return out, err
}

func (h *httpBackend) DecryptFile(ctx context.Context, req models.FileDecryptRequest) (models.DecryptResponse, error) {
	var out models.DecryptResponse
	err := h.do(ctx, "POST", "/api/file/decrypt", req, &out)
	return out, err
}

func (h *httpBackend) LookupPassword(ctx context.Context, path string) (models.PasswordAndHint, error) {
	var out models.PasswordAndHint
	err := h.do(ctx, "POST", "/api/cache/lookup", models.CacheLookupRequest{Path: path}, &out)
	return out, err
}

func (h *httpBackend) ClearCache(ctx context.Context) (int, error) {
	var out models.CacheClearResponse
	err := h.do(ctx, "DELETE", "/api/cache", nil, &out)
	return out.Cleared, err
}

func (h *httpBackend) CacheSettings(ctx context.Context) (models.CacheSettings, error) {
	var out models.CacheSettings
	err := h.do(ctx, "GET", "/api/cache/settings", nil, &out)
	return out, err
}

func (h *httpBackend) ApplyCacheSettings(ctx context.Context, settings models.CacheSettings) (models.CacheSettings, error) {
	var out models.CacheSettings
	err := h.do(ctx, "PUT", "/api/cache/settings", settings, &out)
	return out, err
}

func (h *httpBackend) Version(ctx context.Context) (models.VersionResponse, error) {
	var out models.VersionResponse
	err := h.do(ctx, "GET", "/api/version", nil, &out)
	return out, err
}
