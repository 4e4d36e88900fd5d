package webui

import "embed"

// StaticFS holds the page stylesheet. The export command copies it verbatim.
//
//go:embed static/styles.css
var StaticFS embed.FS
