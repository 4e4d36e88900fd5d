package webui

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"innerspace.app/site/internal/app"
	"innerspace.app/site/internal/appconf"
	"innerspace.app/site/internal/logging"
)

// syncBuffer is a log sink that is safe to read while a test server writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// createTestWebUI creates a WebUI in the test environment with rate limiting
// disabled. Logs go to the returned buffer.
func createTestWebUI(t *testing.T) (*WebUI, *syncBuffer) {
	t.Helper()
	return createTestWebUIWithConfig(t, appconf.Config{
		Port:        4000,
		Env:         appconf.Test,
		ImageHost:   appconf.DefaultImageHost,
		RateLimit:   -1,
		GzipMinSize: 1024,
	})
}

func createTestWebUIWithConfig(t *testing.T, cfg appconf.Config) (*WebUI, *syncBuffer) {
	t.Helper()
	var buf syncBuffer
	webUI, err := NewWebUI(&app.Application{
		Config: cfg,
		Logger: logging.NewStructuredLogger(&buf, slog.LevelInfo),
	})
	require.NoError(t, err)
	t.Cleanup(webUI.Close)
	return webUI, &buf
}

// serveAndRetrieve runs the full handler chain behind a test server and
// returns the response with its body read.
func serveAndRetrieve(t *testing.T, webUI *WebUI, req *http.Request) (*http.Response, string) {
	t.Helper()
	server := httptest.NewServer(webUI.Handler())
	defer server.Close()

	target, err := http.NewRequest(req.Method, server.URL+req.URL.RequestURI(), req.Body)
	require.NoError(t, err)
	target.Header = req.Header.Clone()

	resp, err := http.DefaultTransport.RoundTrip(target)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func get(t *testing.T, webUI *WebUI, target string) (*http.Response, string) {
	t.Helper()
	return serveAndRetrieve(t, webUI, httptest.NewRequest(http.MethodGet, target, nil))
}
