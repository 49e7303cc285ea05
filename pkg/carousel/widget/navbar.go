package widget

import (
	"github.com/BrandonKowalski/carousel/pkg/carousel/i18n"
	"github.com/BrandonKowalski/carousel/pkg/carousel/icon"
	"github.com/BrandonKowalski/carousel/pkg/carousel/layout"
	"github.com/BrandonKowalski/carousel/pkg/carousel/transition"
)

// NavBar holds the window-level "Go to" buttons, one per screen. The buttons
// live on the window rather than on a screen, so they do not slide.
type NavBar struct {
	spec    layout.Navigation
	names   []string
	tr      *i18n.Translator
	buttons []*Element
	current int
}

// NewNavBar creates a detached navigation bar for screens.
func NewNavBar(spec layout.Navigation, screens []*Screen, tr *i18n.Translator) *NavBar {
	names := make([]string, len(screens))
	for i, s := range screens {
		names[i] = s.Name
	}
	return &NavBar{spec: spec, names: names, tr: tr, current: -1}
}

// Attach rebuilds the buttons for the screen now shown. Every button is
// bound to its fixed destination and keeps the hover or press state of the
// button it replaces, so a click held across a settle still completes.
func (n *NavBar) Attach(current int) {
	n.current = current
	previous := n.buttons

	if n.spec.Hidden {
		n.buttons = nil
		return
	}

	n.buttons = make([]*Element, len(n.names))
	for i, name := range n.names {
		b := &Element{
			Kind: layout.KindButton,
			Text: n.tr.NavigateTo(n.spec.TextID, name),
			Bounds: Rect{
				X: n.spec.X,
				Y: n.spec.Y + int32(i)*n.spec.Spacing,
				W: n.spec.Width,
				H: n.spec.Height,
			},
			Style:  n.spec.Style,
			Target: i,
		}
		if n.spec.Icons {
			b.Icon = icon.ForTarget(current, i)
		}
		if i < len(previous) {
			b.state = previous[i].state
			b.armed = previous[i].armed
		}
		n.buttons[i] = b
	}
}

// Attached reports whether Attach has run.
func (n *NavBar) Attached() bool {
	return n.current >= 0
}

// Current is the screen index the bar was last attached for.
func (n *NavBar) Current() int {
	return n.current
}

// Buttons returns the attached buttons.
func (n *NavBar) Buttons() []*Element {
	return n.buttons
}

// PointerMoved updates hover state.
func (n *NavBar) PointerMoved(p transition.Point) {
	for _, b := range n.buttons {
		b.PointerMoved(p)
	}
}

// PointerPressed arms the button under p.
func (n *NavBar) PointerPressed(p transition.Point) bool {
	for _, b := range n.buttons {
		if b.PointerPressed(p) {
			return true
		}
	}
	return false
}

// PointerReleased returns the destination of a completed click, or NoTarget.
func (n *NavBar) PointerReleased(p transition.Point) int {
	target := NoTarget
	for _, b := range n.buttons {
		if b.PointerReleased(p) && target == NoTarget {
			target = b.Target
		}
	}
	return target
}
