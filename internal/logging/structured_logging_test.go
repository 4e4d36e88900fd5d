package logging

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"innerspace.app/site/internal/appconf"
)

func TestStructuredLogger(t *testing.T) {
	t.Run("creates JSON logger with proper configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		logger.Info("page rendered",
			slog.String("component", "landing"),
			slog.Int("bytes", 42))

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"page rendered"`)
		assert.Contains(t, output, `"component":"landing"`)
		assert.Contains(t, output, `"bytes":42`)
		assert.Contains(t, output, `"time":`)
	})

	t.Run("respects log level configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelWarn)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warning message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warning message")
	})

	t.Run("development logger writes key=value pairs", func(t *testing.T) {
		var buf bytes.Buffer
		logger := ForEnvironment(&buf, appconf.Development)

		logger.Info("starting server", slog.String("addr", ":4000"))

		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, `msg="starting server"`)
		assert.Contains(t, output, "addr=:4000")
	})

	t.Run("other environments log JSON", func(t *testing.T) {
		for _, env := range []appconf.Environment{appconf.Test, appconf.Production} {
			var buf bytes.Buffer
			ForEnvironment(&buf, env).Info("starting server")
			assert.Contains(t, buf.String(), `"msg":"starting server"`, env.String())
		}
	})
}

func TestLoggerHelpers(t *testing.T) {
	t.Run("LogError creates structured error log", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogError(logger, "failed to render page", assert.AnError,
			slog.String("path", "/"),
			slog.String("component", "webui"))

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"failed to render page"`)
		assert.Contains(t, output, `"error":"assert.AnError general error for testing"`)
		assert.Contains(t, output, `"path":"/"`)
		assert.Contains(t, output, `"component":"webui"`)
	})

	t.Run("LogError tolerates nil error and nil logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogError(logger, "something odd", nil)
		LogError(nil, "ignored", assert.AnError)

		output := buf.String()
		assert.Contains(t, output, `"msg":"something odd"`)
		assert.NotContains(t, output, `"error"`)
	})

	t.Run("LogOperation drops zero durations", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogOperation(logger, "site_exported",
			slog.String("out", "dist"),
			slog.Int("files", 3),
			slog.Duration("duration", 0))

		output := buf.String()
		assert.Contains(t, output, `"msg":"site_exported"`)
		assert.Contains(t, output, `"out":"dist"`)
		assert.Contains(t, output, `"files":3`)
		assert.NotContains(t, output, `"duration"`)
	})

	t.Run("LogOperation keeps non-zero durations", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogOperation(logger, "site_exported", slog.Duration("duration", 5*time.Millisecond))

		assert.Contains(t, buf.String(), `"duration":5000000`)
	})

	t.Run("LogHTTPRequest logs request details", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		r := httptest.NewRequest(http.MethodGet, "/?utm=x", nil)
		LogHTTPRequest(logger, r, http.StatusOK, 1500*time.Microsecond,
			slog.String("user_agent", "test-client"))

		output := buf.String()
		assert.Contains(t, output, `"msg":"http_request"`)
		assert.Contains(t, output, `"method":"GET"`)
		assert.Contains(t, output, `"path":"/"`)
		assert.Contains(t, output, `"status":200`)
		assert.Contains(t, output, `"duration_ms":1.5`)
		assert.Contains(t, output, `"user_agent":"test-client"`)
		assert.NotContains(t, output, `"menu"`)
	})

	t.Run("LogHTTPRequest records menu navigation", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogHTTPRequest(logger, httptest.NewRequest(http.MethodGet, "/?menu=open", nil), http.StatusOK, time.Millisecond)

		assert.Contains(t, buf.String(), `"menu":"open"`)
	})
}

func TestContextLogger(t *testing.T) {
	t.Run("stores and retrieves logger from context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		ctx := WithLogger(context.Background(), logger)

		retrievedLogger := FromContext(ctx)
		require.NotNil(t, retrievedLogger)

		retrievedLogger.Info("test from context")
		assert.Contains(t, buf.String(), "test from context")
	})

	t.Run("returns default logger when not in context", func(t *testing.T) {
		logger := FromContext(context.Background())

		require.NotNil(t, logger)
		logger.Info("test message")
	})
}
