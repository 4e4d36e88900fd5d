package landing

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func (p Page) hero() g.Node {
	return Section(Class("hero container"),
		Div(Class("hero__grid"),
			p.heroText(),
			p.heroMockup(),
		),
	)
}

func (p Page) heroText() g.Node {
	avatars := make([]g.Node, 0, heroAvatarCount)
	for n := range AvatarSeeds() {
		avatars = append(avatars, Img(Class("avatar avatar--stacked"),
			Src(HeroAvatarURL(p.ImageHost, n)),
			Alt("User"),
			Width("32"), Height("32"),
			g.Attr("referrerpolicy", "no-referrer"),
		))
	}

	return Div(Class("hero__text"), p.entrance(heroTextEntrance),
		Div(Class("badge"),
			Span(Class("badge__dot"), g.Attr("aria-hidden", "true")),
			g.Text("New: Guided Evening Reflections"),
		),
		H1(Class("hero__title"),
			g.Text("Make space for "),
			Br(),
			Span(Class("hero__title-accent"), g.Text("your mind.")),
		),
		P(Class("hero__lead"),
			g.Text("A gentle daily companion to help you pause, reflect, and understand your emotional patterns. No pressure, just presence."),
		),
		Div(Class("hero__actions"),
			placeholderButton("btn btn--dark btn--large btn--grow",
				g.Text("Start Checking In"), IconNode(IconArrowRight, 18, "")),
			placeholderButton("btn btn--light btn--large", g.Text("View Demo")),
		),
		Div(Class("social-proof"),
			Div(Class("social-proof__avatars"), g.Group(avatars)),
			P(g.Text("Joined by 10,000+ mindful people")),
		),
	)
}

// heroMockup is the decorative phone showing the check-in screen.
func (p Page) heroMockup() g.Node {
	return Div(Class("hero__mockup"), p.entrance(heroMockEntrance),
		Div(Class("hero__blob"), g.Attr("aria-hidden", "true")),
		Div(Class("phone"), g.Attr("aria-hidden", "true"),
			Div(Class("phone__status"),
				Span(Class("phone__clock"), g.Text("9:41")),
				Div(Class("phone__dots"), Span(), Span()),
			),
			Div(Class("phone__screen"),
				Div(Class("phone__header"),
					Span(Class("phone__avatar")),
					Span(Class("phone__menu"), IconNode(IconMenu, 14, "")),
				),
				H3(Class("phone__greeting"), g.Text("Good morning, Alex.")),
				P(Class("phone__prompt"), g.Text("How are you feeling right now?")),
				Div(Class("moods"),
					g.Map(MoodOptions(), func(m MoodOption) g.Node {
						return Div(Class("mood"),
							Span(Class("mood__icon mood__icon--"+m.Tone), IconNode(m.Icon, 16, "")),
							Span(Class("mood__label"), g.Text(m.Label)),
						)
					}),
				),
				Div(Class("streak"),
					Div(Class("streak__track"), Div(Class("streak__fill"))),
					P(Class("streak__label"), g.Text("Daily Streak: 12 Days")),
				),
			),
		),
	)
}
