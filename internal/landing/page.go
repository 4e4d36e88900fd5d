// Package landing renders the InnerSpace marketing page.
package landing

import (
	"bytes"
	"fmt"
	"io"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const brandName = "InnerSpace"

// Links are the targets the page points at for state changes and assets.
// The server uses query strings; a static export uses sibling files.
//
// Home is only ever the first load. Every menu interaction leads to
// MenuOpen or MenuClosed, which render without entrance animations.
type Links struct {
	Home       string
	MenuOpen   string
	MenuClosed string
	Stylesheet string
}

func DefaultLinks() Links {
	return Links{
		Home:       "/",
		MenuOpen:   "/?menu=open",
		MenuClosed: "/?menu=closed",
		Stylesheet: "/static/styles.css",
	}
}

// Toggle returns where the menu button leads from state s.
func (l Links) Toggle(s MenuState) string {
	if s.Toggle().IsOpen() {
		return l.MenuOpen
	}
	return l.MenuClosed
}

// Close returns the closed page scrolled to anchor.
func (l Links) Close(anchor string) string {
	return l.MenuClosed + anchor
}

// Page is the whole landing page for one menu state.
type Page struct {
	Menu      MenuState
	Links     Links
	ImageHost string
	// Entrance is set on the first load only. The hero entrance
	// animations are emitted when it is true.
	Entrance bool
}

// NewPage is the page as first loaded.
func NewPage(menu MenuState, links Links, imageHost string) Page {
	return Page{Menu: menu, Links: links, ImageHost: imageHost, Entrance: true}
}

// Settled is p reached through an interaction rather than a first load.
func (p Page) Settled() Page {
	p.Entrance = false
	return p
}

// Toggle is the page after the menu button is clicked.
func (p Page) Toggle() Page {
	p.Menu = p.Menu.Apply(EventToggle)
	return p.Settled()
}

// FollowLink is the page after a mobile navigation link is clicked.
func (p Page) FollowLink() Page {
	p.Menu = p.Menu.Apply(EventLinkClick)
	return p.Settled()
}

// entrance returns the mount transition t, or nothing after an interaction.
func (p Page) entrance(t Transition) g.Node {
	if !p.Entrance {
		return nil
	}
	return Animate(t)
}

func (p Page) Node() g.Node {
	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("description"), Content("A gentle daily companion to help you pause, reflect, and understand your emotional patterns.")),
				g.El("title", g.Text(brandName+" · Make space for your mind")),
				Link(Rel("stylesheet"), Href(p.Links.Stylesheet)),
			),
			Body(Class("page"), g.Attr("data-menu", p.Menu.String()),
				p.navigation(),
				Main(
					p.hero(),
					featuresSection(),
					p.testimonialSection(),
					callToAction(),
				),
				siteFooter(),
			),
		),
	)
}

func (p Page) Render(w io.Writer) error {
	if err := p.Node().Render(w); err != nil {
		return fmt.Errorf("render landing page (menu %s): %w", p.Menu, err)
	}
	return nil
}

// HTML renders the page into memory.
func (p Page) HTML() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func brandMark(small bool) g.Node {
	size, class := 18, "brand"
	if small {
		size, class = 14, "brand brand--small"
	}
	return Div(Class(class),
		Span(Class("brand__logo"), IconNode(IconWind, size, "")),
		Span(Class("brand__name"), g.Text(brandName)),
	)
}

// placeholderButton is a call to action without a destination yet.
func placeholderButton(class string, children ...g.Node) g.Node {
	return Button(Type("button"), Class(class), g.Group(children))
}
