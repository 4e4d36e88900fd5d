// Package logging holds the slog setup shared by the server and the export command.
package logging

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"innerspace.app/site/internal/appconf"
)

type loggerKey struct{}

// NewStructuredLogger writes JSON lines, the format used outside development.
func NewStructuredLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// ForEnvironment returns key=value text while developing and JSON elsewhere.
func ForEnvironment(w io.Writer, env appconf.Environment) *slog.Logger {
	if env == appconf.Development {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return NewStructuredLogger(w, slog.LevelInfo)
}

// LogError logs message at error level. A nil err logs the message alone.
func LogError(logger *slog.Logger, message string, err error, attrs ...slog.Attr) {
	if logger == nil {
		return
	}
	args := make([]any, 0, len(attrs)+1)
	if err != nil {
		args = append(args, slog.String("error", err.Error()))
	}
	for _, attr := range attrs {
		args = append(args, attr)
	}
	logger.Error(message, args...)
}

// LogOperation records a finished operation such as a site export.
// An unmeasured (zero) duration is left out.
func LogOperation(logger *slog.Logger, operation string, attrs ...slog.Attr) {
	if logger == nil {
		return
	}
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		if attr.Value.Kind() == slog.KindDuration && attr.Value.Duration() == 0 {
			continue
		}
		args = append(args, attr)
	}
	logger.Info(operation, args...)
}

// LogHTTPRequest records one served request. The menu state is logged when
// the visitor arrived through the menu, so toggles can be told from first loads.
func LogHTTPRequest(logger *slog.Logger, r *http.Request, status int, elapsed time.Duration, attrs ...slog.Attr) {
	if logger == nil {
		return
	}
	args := make([]any, 0, len(attrs)+5)
	args = append(args,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Float64("duration_ms", float64(elapsed.Nanoseconds())/1e6),
	)
	if q := r.URL.Query(); q.Has("menu") {
		args = append(args, slog.String("menu", q.Get("menu")))
	}
	for _, attr := range attrs {
		args = append(args, attr)
	}
	logger.Info("http_request", args...)
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the request logger, or slog.Default outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
