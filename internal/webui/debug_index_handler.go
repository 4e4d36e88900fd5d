package webui

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
	"innerspace.app/site/internal/landing"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

// debugDump sorts map keys so a page is the same on every request.
var debugDump = spew.ConfigState{Indent: " ", SortKeys: true}

var debugDataTypes = []string{"features", "nav", "avatars", "testimonial", "moods", "footer", "transitions", "icons", "gaps"}

type debugData struct {
	Title     string
	Pre       string
	DataTypes []string
}

func (webUI *WebUI) writeDebugData(w http.ResponseWriter, r *http.Request, title string, data interface{}) {
	dataStruct := debugData{
		Title:     title,
		Pre:       debugDump.Sdump(data),
		DataTypes: debugDataTypes,
	}

	var buf bytes.Buffer
	if err := debugTemplate.Execute(&buf, dataStruct); err != nil {
		webUI.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "features":
		data = landing.Features()
		title = "Content - Feature Cards"
	case "nav":
		data = landing.NavLinks()
		title = "Content - Navigation Links"
	case "avatars":
		urls := make([]string, 0, len(landing.AvatarSeeds()))
		for n := range landing.AvatarSeeds() {
			urls = append(urls, landing.HeroAvatarURL(webUI.Config.ImageHost, n))
		}
		data = urls
		title = "Content - Hero Avatars"
	case "testimonial":
		data = landing.Testimonial()
		title = "Content - Testimonial"
	case "moods":
		data = landing.MoodOptions()
		title = "Content - Mockup Moods"
	case "footer":
		data = landing.FooterColumns()
		title = "Content - Footer Columns"
	case "transitions":
		data = landing.Transitions()
		title = "Presentation - Transitions"
	case "icons":
		data = landing.Icons()
		title = "Presentation - Icons"
	case "gaps":
		data = landing.DanglingAnchors()
		title = "Known Gaps - Dangling Anchors"
	default:
		data = map[string]string{
			"error": "Please use one of the following: features, nav, avatars, testimonial, moods, footer, transitions, icons, gaps.",
		}
		title = "Choose a data type"
	}

	webUI.writeDebugData(w, r, title, data)
}
