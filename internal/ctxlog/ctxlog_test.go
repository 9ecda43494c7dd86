// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", "text")

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("hello", "k", "v")

	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "k=v")
}

func TestFromContext_Missing(t *testing.T) {
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Error("dropped")
	})
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		wantInfo bool
	}{
		{name: "debug", level: "debug", wantInfo: true},
		{name: "warn", level: "warn", wantInfo: false},
		{name: "unknown falls back to warn", level: "loud", wantInfo: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf, tt.level, "text").Info("visible")
			assert.Equal(t, tt.wantInfo, buf.Len() > 0)
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "info", "json").Info("structured", "schema", "canvas")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "structured", line["@message"])
	assert.Equal(t, "canvas", line["schema"])
}
