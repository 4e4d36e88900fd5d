package webui

import (
	"log/slog"
	"net/http"

	"innerspace.app/site/internal/landing"
	"innerspace.app/site/internal/logging"
)

func (webUI *WebUI) landingHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	menu := landing.ParseMenuState(query.Get("menu"))
	page := landing.NewPage(menu, webUI.links, webUI.Config.ImageHost)
	// Any menu value means the visitor arrived by clicking on the page.
	if query.Has("menu") {
		page = page.Settled()
	}

	body, err := page.HTML()
	if err != nil {
		webUI.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(body); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to write landing page", err,
			slog.String("menu", menu.String()),
			slog.String("component", "webui"))
	}
}
