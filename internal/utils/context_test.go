// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "traceID", TraceIDCtxKey.String())
}

func TestGetTraceIDFromContext_Success(t *testing.T) {
	ctx := WithTraceID(context.Background(), "0192-abc")

	traceID, ok := GetTraceIDFromContext(ctx)

	require.True(t, ok)
	assert.Equal(t, "0192-abc", traceID)
}

func TestGetTraceIDFromContext_Missing(t *testing.T) {
	_, ok := GetTraceIDFromContext(context.Background())
	assert.False(t, ok, "empty context")

	_, ok = GetTraceIDFromContext(WithTraceID(context.Background(), ""))
	assert.False(t, ok, "empty trace ID")
}

func TestGetTraceIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, 42)

	_, ok := GetTraceIDFromContext(ctx)
	assert.False(t, ok)
}
