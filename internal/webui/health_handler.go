package webui

import (
	"encoding/json"
	"net/http"
)

func (webUI *WebUI) healthHandler(w http.ResponseWriter, r *http.Request) {
	response := struct {
		Status string `json:"status"`
		Env    string `json:"env"`
	}{
		Status: "ok",
		Env:    webUI.Config.Env.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		webUI.Logger.Error("failed to encode health response", "error", err)
	}
}
