package landing

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const noiseSVG = `<svg width="100%" height="100%" xmlns="http://www.w3.org/2000/svg"><filter id="noise"><feTurbulence type="fractalNoise" baseFrequency="0.8" numOctaves="3" stitchTiles="stitch"/></filter><rect width="100%" height="100%" filter="url(#noise)"/></svg>`

func featuresSection() g.Node {
	return Section(ID(SectionFeatures), Class("features"),
		Div(Class("container"),
			Div(Class("section-intro"),
				H2(g.Text("Designed for quiet moments")),
				P(g.Text("We stripped away the noise to create a sanctuary for your thoughts. No ads, no infinite scrolling, just you.")),
			),
			Div(Class("features__grid"),
				g.Map(Features(), featureCard),
			),
		),
	)
}

func featureCard(f FeatureItem) g.Node {
	return Div(Class("feature-card"), Animate(cardHoverLift),
		Div(Class("feature-card__icon"), IconNode(f.Icon, 24, "")),
		H3(Class("feature-card__title"), g.Text(f.Title)),
		P(Class("feature-card__body"), g.Text(f.Description)),
	)
}

func (p Page) testimonialSection() g.Node {
	q := Testimonial()
	stars := make([]g.Node, 5)
	for i := range stars {
		stars[i] = Span(g.Text("★"))
	}

	return Section(ID(SectionReviews), Class("reviews"),
		Div(Class("reviews__noise"), g.Attr("aria-hidden", "true"), g.Raw(noiseSVG)),
		Div(Class("reviews__body"),
			Div(Class("reviews__stars"), g.Attr("aria-label", "5 out of 5 stars"), g.Group(stars)),
			H2(Class("reviews__quote"), g.Textf(`"%s"`, q.Quote)),
			Div(Class("reviews__author"),
				Img(Class("avatar avatar--large"),
					Src(q.AvatarURL(p.ImageHost)),
					Alt(q.AvatarAlt),
					Width("48"), Height("48"),
					g.Attr("referrerpolicy", "no-referrer"),
				),
				Div(
					Div(Class("reviews__name"), g.Text(q.AuthorName)),
					Div(Class("reviews__role"), g.Text(q.AuthorRole)),
				),
			),
		),
	)
}

func callToAction() g.Node {
	return Section(Class("cta container container--narrow"),
		Div(Class("cta__panel"),
			Div(Class("cta__circle cta__circle--top"), g.Attr("aria-hidden", "true")),
			Div(Class("cta__circle cta__circle--bottom"), g.Attr("aria-hidden", "true")),
			Div(Class("cta__content"),
				H2(g.Text("Start your journey inward.")),
				P(Class("cta__lead"), g.Text("Join thousands of others who are building a healthier relationship with their mind. Free to start, fair to upgrade.")),
				Div(Class("cta__actions"),
					placeholderButton("btn btn--dark btn--large btn--grow", g.Text("Download for iOS")),
					placeholderButton("btn btn--light btn--large", g.Text("Download for Android")),
				),
				P(Class("cta__fineprint"), g.Text("No credit card required for free tier. Cancel anytime.")),
			),
		),
	)
}

func siteFooter() g.Node {
	return Footer(Class("footer"),
		Div(Class("container"),
			Div(Class("footer__grid"),
				Div(Class("footer__about"),
					brandMark(true),
					P(g.Text("Making the world a little more mindful, one check-in at a time.")),
				),
				g.Map(FooterColumns(), func(c FooterColumn) g.Node {
					return Div(Class("footer__column"),
						H4(g.Text(c.Heading)),
						Ul(g.Map(c.Links, func(label string) g.Node {
							return Li(A(Href("#"), g.Text(label)))
						})),
					)
				}),
			),
			Div(Class("footer__legal"),
				P(g.Text("© 2024 InnerSpace Inc. All rights reserved.")),
			),
		),
	)
}
