package landing

import (
	"strconv"

	g "maragu.dev/gomponents"
)

// Icon names a glyph from the page's icon set.
type Icon string

const (
	IconWind        Icon = "wind"
	IconHeart       Icon = "heart"
	IconBarChart    Icon = "bar-chart"
	IconArrowRight  Icon = "arrow-right"
	IconCheckCircle Icon = "check-circle"
	IconMenu        Icon = "menu"
	IconClose       Icon = "close"
	IconSmile       Icon = "smile"
	IconMeh         Icon = "meh"
	IconFrown       Icon = "frown"
	IconCloudSun    Icon = "cloud-sun"
)

const (
	faceOutline = `<circle cx="12" cy="12" r="10"/>`
	faceEyes    = `<line x1="9" x2="9.01" y1="9" y2="9"/><line x1="15" x2="15.01" y1="9" y2="9"/>`
)

// 24x24 stroke paths in the lucide style.
var iconPaths = map[Icon]string{
	IconWind:        `<path d="M17.7 7.7a2.5 2.5 0 1 1 1.8 4.3H2"/><path d="M9.6 4.6A2 2 0 1 1 11 8H2"/><path d="M12.6 19.4A2 2 0 1 0 14 16H2"/>`,
	IconHeart:       `<path d="M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"/>`,
	IconBarChart:    `<path d="M3 3v18h18"/><path d="M18 17V9"/><path d="M13 17V5"/><path d="M8 17v-3"/>`,
	IconArrowRight:  `<path d="M5 12h14"/><path d="m12 5 7 7-7 7"/>`,
	IconCheckCircle: faceOutline + `<path d="m9 12 2 2 4-4"/>`,
	IconMenu:        `<line x1="4" x2="20" y1="12" y2="12"/><line x1="4" x2="20" y1="6" y2="6"/><line x1="4" x2="20" y1="18" y2="18"/>`,
	IconClose:       `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`,
	IconSmile:       faceOutline + `<path d="M8 14s1.5 2 4 2 4-2 4-2"/>` + faceEyes,
	IconMeh:         faceOutline + `<line x1="8" x2="16" y1="15" y2="15"/>` + faceEyes,
	IconFrown:       faceOutline + `<path d="M16 16s-1.5-2-4-2-4 2-4 2"/>` + faceEyes,
	IconCloudSun:    `<path d="M12 2v2"/><path d="m4.93 4.93 1.41 1.41"/><path d="M20 12h2"/><path d="m19.07 4.93-1.41 1.41"/><path d="M15.947 12.65a4 4 0 0 0-5.925-4.128"/><path d="M13 22H7a5 5 0 1 1 4.9-6H13a3 3 0 0 1 0 6Z"/>`,
}

// Icons returns every icon name in the set.
func Icons() []Icon {
	return []Icon{
		IconWind, IconHeart, IconBarChart, IconArrowRight, IconCheckCircle, IconMenu,
		IconClose, IconSmile, IconMeh, IconFrown, IconCloudSun,
	}
}

func (i Icon) Valid() bool {
	_, ok := iconPaths[i]
	return ok
}

// IconNode renders i as an inline, decorative SVG. Unknown icons render nothing.
func IconNode(i Icon, size int, class string) g.Node {
	paths, ok := iconPaths[i]
	if !ok {
		return nil
	}
	px := strconv.Itoa(size)
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", px),
		g.Attr("height", px),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Attr("data-icon", string(i)),
		g.If(class != "", g.Attr("class", class)),
		g.Raw(paths),
	)
}
