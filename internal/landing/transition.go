package landing

import (
	"fmt"
	"strings"
	"time"

	g "maragu.dev/gomponents"
)

// Phase is the lifecycle moment a transition is attached to.
type Phase string

const (
	PhaseMount   Phase = "mount"
	PhaseUnmount Phase = "unmount"
	PhaseHover   Phase = "hover"
)

type EffectKind string

const (
	EffectFadeSlideUp EffectKind = "fade-slide-up"
	EffectFadeScale   EffectKind = "fade-scale"
	EffectFadeHeight  EffectKind = "fade-height"
	EffectLift        EffectKind = "lift"
)

type Easing string

const (
	EaseOut   Easing = "ease-out"
	EaseInOut Easing = "ease-in-out"
	Ease      Easing = "ease"
)

// Transition describes a declarative animation. The stylesheet keys off the
// data-fx attribute and reads timing from --fx-<phase>-* custom properties.
type Transition struct {
	Phase    Phase
	Kind     EffectKind
	Duration time.Duration
	Delay    time.Duration
	Easing   Easing
}

var (
	heroTextEntrance = Transition{Phase: PhaseMount, Kind: EffectFadeSlideUp, Duration: 800 * time.Millisecond, Easing: EaseOut}
	heroMockEntrance = Transition{Phase: PhaseMount, Kind: EffectFadeScale, Duration: 800 * time.Millisecond, Delay: 200 * time.Millisecond, Easing: EaseOut}
	menuPanelEnter   = Transition{Phase: PhaseMount, Kind: EffectFadeHeight, Duration: 250 * time.Millisecond, Easing: EaseInOut}
	menuPanelExit    = Transition{Phase: PhaseUnmount, Kind: EffectFadeHeight, Duration: 250 * time.Millisecond, Easing: EaseInOut}
	cardHoverLift    = Transition{Phase: PhaseHover, Kind: EffectLift, Duration: 300 * time.Millisecond, Easing: Ease}
)

// Transitions lists every transition used on the page, keyed by the node it
// decorates.
func Transitions() map[string][]Transition {
	return map[string][]Transition{
		"hero-text":    {heroTextEntrance},
		"hero-mockup":  {heroMockEntrance},
		"mobile-menu":  {menuPanelEnter, menuPanelExit},
		"feature-card": {cardHoverLift},
	}
}

func (t Transition) token() string {
	return string(t.Phase) + ":" + string(t.Kind)
}

func (t Transition) declarations() string {
	prefix := "--fx-" + string(t.Phase)
	return fmt.Sprintf("%s-duration:%dms;%s-delay:%dms;%s-easing:%s",
		prefix, t.Duration.Milliseconds(),
		prefix, t.Delay.Milliseconds(),
		prefix, t.Easing)
}

// Animate attaches ts to the enclosing element. It sets the style attribute,
// so the element must not set its own.
func Animate(ts ...Transition) g.Node {
	if len(ts) == 0 {
		return nil
	}
	tokens := make([]string, len(ts))
	decls := make([]string, len(ts))
	for i, t := range ts {
		tokens[i] = t.token()
		decls[i] = t.declarations()
	}
	return g.Group([]g.Node{
		g.Attr("data-fx", strings.Join(tokens, " ")),
		g.Attr("style", strings.Join(decls, ";")),
	})
}
