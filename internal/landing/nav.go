package landing

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func (p Page) navigation() g.Node {
	return Nav(Class("nav"),
		Div(Class("nav__bar container"),
			brandMark(false),
			Div(Class("nav__links"),
				g.Map(NavLinks(), func(l NavLink) g.Node {
					return A(Class("nav__link"), Href(l.Href), g.Text(l.Label))
				}),
				placeholderButton("btn btn--dark btn--small", g.Text("Get Started")),
			),
			p.menuToggle(),
		),
		g.If(p.Menu.IsOpen(), p.mobileMenu()),
	)
}

func (p Page) menuToggle() g.Node {
	label, icon := "Open menu", IconMenu
	if p.Menu.IsOpen() {
		label, icon = "Close menu", IconClose
	}
	return A(ID("menu-toggle"), Class("nav__toggle"),
		Href(p.Links.Toggle(p.Menu)),
		g.Attr("role", "button"),
		g.Attr("aria-label", label),
		g.Attr("aria-expanded", boolAttr(p.Menu.IsOpen())),
		g.If(p.Menu.IsOpen(), g.Attr("aria-controls", "mobile-menu")),
		IconNode(icon, 24, ""),
	)
}

func (p Page) mobileMenu() g.Node {
	return Div(ID("mobile-menu"), Class("mobile-menu"), Animate(menuPanelEnter, menuPanelExit),
		Div(Class("mobile-menu__items"),
			g.Map(NavLinks(), func(l NavLink) g.Node {
				return A(Class("mobile-menu__link"), Href(p.Links.Close(l.Href)), g.Text(l.Label))
			}),
			placeholderButton("btn btn--dark btn--block", g.Text("Get Started")),
		),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
