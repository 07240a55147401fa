package logging

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupHandlerText(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		debugEnabled bool
	}{
		{name: "trace level", logLevel: "trace", debugEnabled: true},
		{name: "debug level", logLevel: "debug", debugEnabled: true},
		{name: "info level", logLevel: "info", debugEnabled: false},
		{name: "warn level", logLevel: "warn", debugEnabled: false},
		{name: "warning level", logLevel: "warning", debugEnabled: false},
		{name: "error level", logLevel: "error", debugEnabled: false},
		{name: "unknown defaults to info", logLevel: "chatty", debugEnabled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := SetupHandlerText(tt.logLevel, &buf)
			require.NotNil(t, handler)
			assert.Equal(t, tt.debugEnabled,
				handler.Enabled(context.Background(), slog.LevelDebug))
		})
	}

	t.Run("nil writer defaults to stderr", func(t *testing.T) {
		assert.NotNil(t, SetupHandlerText("info", nil))
	})
}

func TestSetupHandlerJSON(t *testing.T) {
	var buf bytes.Buffer
	handler := SetupHandlerJSON("debug", &buf)
	require.NotNil(t, handler)

	logger := slog.New(handler)
	logger.Debug("emitting", "tool", "get_variable")

	out := buf.String()
	assert.Contains(t, out, `"msg":"emitting"`)
	assert.Contains(t, out, `"tool":"get_variable"`)

	t.Run("warn suppresses info", func(t *testing.T) {
		var quiet bytes.Buffer
		h := SetupHandlerJSON("warn", &quiet)
		slog.New(h).Info("should not appear")
		assert.Empty(t, quiet.String())
	})
}

func TestSetup(t *testing.T) {
	t.Run("text format", func(t *testing.T) {
		logger, err := Setup("info", "text", "stderr")
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("json format", func(t *testing.T) {
		logger, err := Setup("debug", "json", "stderr")
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Setup("info", "yaml", "stderr")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported log format")
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "server.log")
		logger, err := Setup("info", "json", path)
		require.NoError(t, err)
		logger.Info("started")
		// The directory is created on demand.
		assert.FileExists(t, path)
	})

	t.Run("unsupported output scheme", func(t *testing.T) {
		_, err := Setup("info", "text", "syslog://localhost")
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "unsupported log output"))
	})
}
