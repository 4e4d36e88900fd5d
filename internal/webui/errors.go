package webui

import (
	"log/slog"
	"net/http"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"innerspace.app/site/internal/logging"
)

func errorPage(status int, message string) g.Node {
	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				g.El("title", g.Textf("%d %s", status, http.StatusText(status))),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(Class("page page--error"),
				Main(Class("error container"),
					H1(g.Textf("%d", status)),
					P(g.Text(message)),
					A(Class("btn btn--dark"), Href("/"), g.Text("Back to InnerSpace")),
				),
			),
		),
	)
}

func (webUI *WebUI) writeErrorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	if err := errorPage(status, message).Render(w); err != nil {
		logging.LogError(webUI.Logger, "failed to render error page", err,
			slog.Int("status", status),
			slog.String("component", "webui"))
	}
}

func (webUI *WebUI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err,
		slog.String("path", r.URL.Path),
		slog.String("component", "webui"))
	webUI.writeErrorPage(w, r, http.StatusInternalServerError, "Something went wrong on our side. Take a breath and try again.")
}

func (webUI *WebUI) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	webUI.writeErrorPage(w, r, http.StatusNotFound, "This page drifted away.")
}
