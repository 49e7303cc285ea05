package widget

import (
	"github.com/BrandonKowalski/carousel/pkg/carousel/layout"
	"github.com/BrandonKowalski/carousel/pkg/carousel/transition"
)

// ButtonState is the interaction state of a clickable element.
type ButtonState int

const (
	StateIdle ButtonState = iota
	StateHover
	StatePressed
)

func (s ButtonState) String() string {
	switch s {
	case StateHover:
		return "hover"
	case StatePressed:
		return "pressed"
	default:
		return "idle"
	}
}

// Element is a built, drawable widget. Its Bounds are relative to the screen
// (or window, for navigation buttons) that owns it.
type Element struct {
	Kind   layout.Kind
	Text   string
	Bounds Rect
	Style  layout.Style

	// Target is the screen a button switches to, or -1.
	Target int
	// Icon is an optional glyph name drawn left of the text.
	Icon string

	Slider  *SliderSpec
	Checked bool
	state   ButtonState
	armed   bool // pressed inside and not yet released
}

// SliderSpec is the static value of a slider.
type SliderSpec struct {
	Minimum, Maximum, Value, TickInterval int
	Orientation                           layout.Orientation
	TickPosition                          layout.TickPosition
}

// State returns the current interaction state.
func (e *Element) State() ButtonState {
	return e.state
}

// Clickable reports whether the element reacts to the pointer.
func (e *Element) Clickable() bool {
	return e.Kind == layout.KindButton
}

// Fill returns the background colour for the current state.
func (e *Element) Fill() layout.Color {
	switch e.state {
	case StatePressed:
		return e.Style.PressedColor
	case StateHover:
		return e.Style.HoverColor
	default:
		return e.Style.BackgroundColor
	}
}

// PointerMoved updates hover state. p is relative to the owner.
func (e *Element) PointerMoved(p transition.Point) {
	if !e.Clickable() {
		return
	}
	inside := e.Bounds.Contains(p)
	switch {
	case e.armed && inside:
		e.state = StatePressed
	case inside:
		e.state = StateHover
	default:
		// Dragged out while held looks idle until the pointer comes back.
		e.state = StateIdle
	}
}

// PointerPressed starts a click if p is inside. It reports whether the
// element took the press.
func (e *Element) PointerPressed(p transition.Point) bool {
	if !e.Clickable() || !e.Bounds.Contains(p) {
		return false
	}
	e.armed = true
	e.state = StatePressed
	return true
}

// PointerReleased finishes a click. It reports true when the press began
// and ended inside the element.
func (e *Element) PointerReleased(p transition.Point) bool {
	if !e.Clickable() {
		return false
	}
	armed := e.armed
	e.armed = false

	inside := e.Bounds.Contains(p)
	if inside {
		e.state = StateHover
	} else {
		e.state = StateIdle
	}
	return armed && inside
}

// Reset clears any interaction state.
func (e *Element) Reset() {
	e.state = StateIdle
	e.armed = false
}
