package webui

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"innerspace.app/site/internal/app"
	"innerspace.app/site/internal/landing"
)

type WebUI struct {
	*app.Application
	links       landing.Links
	compress    func(http.Handler) http.HandlerFunc
	rateLimiter *RateLimitMiddleware
}

// NewWebUI creates a WebUI serving the landing page with the default links.
func NewWebUI(application *app.Application) (*WebUI, error) {
	compress, err := newCompressor(application.Config.GzipMinSize)
	if err != nil {
		return nil, err
	}
	return &WebUI{
		Application: application,
		links:       landing.DefaultLinks(),
		compress:    compress,
		rateLimiter: NewRateLimitMiddleware(application.Config.RateLimit, time.Second),
	}, nil
}

// Handler returns the router wrapped in the middleware chain.
func (webUI *WebUI) Handler() http.Handler {
	router := httprouter.New()
	webUI.SetRoutes(router)

	var handler http.Handler = router
	handler = webUI.compress(handler)
	handler = webUI.rateLimiter.Handler(handler)
	handler = webUI.WithSecurityHeaders(handler)
	handler = NewRequestLoggingMiddleware(webUI.Logger)(handler)
	return RequestIDMiddleware(handler)
}

// Close releases background resources held by the middleware.
func (webUI *WebUI) Close() {
	webUI.rateLimiter.Stop()
}
