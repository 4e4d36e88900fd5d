package webui

import (
	"io/fs"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (webUI *WebUI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/", webUI.landingHandler)
	router.HandlerFunc(http.MethodHead, "/", webUI.landingHandler)
	router.HandlerFunc(http.MethodGet, "/healthz", webUI.healthHandler)

	static, err := fs.Sub(StaticFS, "static")
	if err != nil {
		// StaticFS is embedded at build time, so this only fails on a broken build.
		panic(err)
	}
	router.ServeFiles("/static/*filepath", http.FS(static))

	if webUI.Config.DebugEnabled() {
		router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
	}

	router.NotFound = http.HandlerFunc(webUI.notFoundResponse)
}
