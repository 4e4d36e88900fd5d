package landing

import (
	"net/url"
	"strconv"
)

// Section ids that navigation anchors can target.
const (
	SectionFeatures = "features"
	SectionReviews  = "reviews"
)

const (
	avatarSeedOffset = 20
	heroAvatarCount  = 4
	avatarSize       = 100
)

type FeatureItem struct {
	Icon        Icon
	Title       string
	Description string
}

type NavLink struct {
	Label string
	Href  string
}

// TestimonialQuote is the single review shown in the #reviews section.
type TestimonialQuote struct {
	Quote      string
	AuthorName string
	AuthorRole string
	// AvatarSeed names the placeholder image, see PlaceholderImageURL.
	AvatarSeed string
	AvatarAlt  string
}

// MoodOption is one row of the decorative app mockup.
type MoodOption struct {
	Icon  Icon
	Label string
	Tone  string
}

type FooterColumn struct {
	Heading string
	Links   []string
}

var features = [...]FeatureItem{
	{
		Icon:        IconCloudSun,
		Title:       "Daily Check-ins",
		Description: "Quick, intuitive mood tracking that takes seconds, not minutes. Build a habit of self-awareness without the friction.",
	},
	{
		Icon:        IconBarChart,
		Title:       "Gentle Insights",
		Description: "Visualize your emotional trends over time. Spot patterns between your sleep, activities, and how you feel.",
	},
	{
		Icon:        IconHeart,
		Title:       "Guided Reflection",
		Description: "Thoughtful prompts that adapt to your mood. From gratitude to processing difficult emotions, we guide the way.",
	},
}

var navLinks = [...]NavLink{
	{Label: "Features", Href: "#" + SectionFeatures},
	{Label: "The Science", Href: "#science"},
	{Label: "Stories", Href: "#" + SectionReviews},
}

var testimonial = TestimonialQuote{
	Quote:      "Finally, an app that doesn't feel like another task on my to-do list. It feels like a deep breath.",
	AuthorName: "Sarah Jenkins",
	AuthorRole: "Mindfulness Coach",
	AvatarSeed: "sarah",
	AvatarAlt:  "Sarah J.",
}

var moodOptions = [...]MoodOption{
	{Icon: IconSmile, Label: "Calm & Focused", Tone: "sage"},
	{Icon: IconMeh, Label: "A bit anxious", Tone: "orange"},
	{Icon: IconFrown, Label: "Tired", Tone: "blue"},
}

var footerColumns = [...]FooterColumn{
	{Heading: "Product", Links: []string{"Features", "Pricing", "Download"}},
	{Heading: "Company", Links: []string{"About", "Blog", "Careers"}},
	{Heading: "Legal", Links: []string{"Privacy", "Terms"}},
}

// Features returns a copy of the three feature cards, in display order.
func Features() []FeatureItem {
	return append([]FeatureItem(nil), features[:]...)
}

// NavLinks returns the links shared by the desktop bar and the mobile panel.
func NavLinks() []NavLink {
	return append([]NavLink(nil), navLinks[:]...)
}

func Testimonial() TestimonialQuote {
	return testimonial
}

func MoodOptions() []MoodOption {
	return append([]MoodOption(nil), moodOptions[:]...)
}

func FooterColumns() []FooterColumn {
	cols := make([]FooterColumn, len(footerColumns))
	for i, c := range footerColumns {
		cols[i] = FooterColumn{Heading: c.Heading, Links: append([]string(nil), c.Links...)}
	}
	return cols
}

// AvatarSeeds returns the image seeds of the hero avatar stack.
func AvatarSeeds() []int {
	seeds := make([]int, heroAvatarCount)
	for i := range seeds {
		seeds[i] = i + avatarSeedOffset
	}
	return seeds
}

// SectionIDs lists the ids of the sections rendered on the page.
func SectionIDs() []string {
	return []string{SectionFeatures, SectionReviews}
}

// DanglingAnchors returns the navigation anchors that have no section to
// scroll to. "#science" is a known gap in the page copy.
func DanglingAnchors() []string {
	known := make(map[string]bool)
	for _, id := range SectionIDs() {
		known[id] = true
	}

	var dangling []string
	for _, link := range navLinks {
		if len(link.Href) < 2 || link.Href[0] != '#' {
			continue
		}
		if !known[link.Href[1:]] {
			dangling = append(dangling, link.Href)
		}
	}
	return dangling
}

// PlaceholderImageURL builds https://<host>/seed/<seed>/100/100.
func PlaceholderImageURL(host, seed string) string {
	u := url.URL{
		Scheme: "https",
		Host:   host,
		Path:   "/seed/" + seed + "/" + strconv.Itoa(avatarSize) + "/" + strconv.Itoa(avatarSize),
	}
	return u.String()
}

// HeroAvatarURL returns the image of the n-th (0-indexed) hero avatar.
func HeroAvatarURL(host string, n int) string {
	return PlaceholderImageURL(host, strconv.Itoa(n+avatarSeedOffset))
}

func (q TestimonialQuote) AvatarURL(host string) string {
	return PlaceholderImageURL(host, q.AvatarSeed)
}
