package landing

// MenuState is the open/closed state of the mobile navigation panel. It is
// the only stateful value on the page.
type MenuState bool

const (
	MenuClosed MenuState = false
	MenuOpen   MenuState = true
)

// MenuEvent is a user interaction that can change the menu state.
type MenuEvent int

const (
	// EventToggle is a click on the hamburger / close button.
	EventToggle MenuEvent = iota
	// EventLinkClick is a click on any link inside the mobile panel.
	EventLinkClick
)

// ParseMenuState reads the "menu" query value. Only "open" opens the panel;
// every other value, including garbage, leaves it closed.
func ParseMenuState(v string) MenuState {
	return MenuState(v == "open")
}

func (s MenuState) IsOpen() bool {
	return bool(s)
}

func (s MenuState) Toggle() MenuState {
	return !s
}

func (s MenuState) Close() MenuState {
	return MenuClosed
}

// Apply returns the state after e.
func (s MenuState) Apply(e MenuEvent) MenuState {
	switch e {
	case EventToggle:
		return s.Toggle()
	case EventLinkClick:
		return s.Close()
	default:
		return s
	}
}

func (s MenuState) String() string {
	if s {
		return "open"
	}
	return "closed"
}

func (e MenuEvent) String() string {
	switch e {
	case EventToggle:
		return "toggle"
	case EventLinkClick:
		return "linkClick"
	default:
		return "unknown"
	}
}
