// Package layout describes carousel screens declaratively.
//
// A Layout lists the window, the transition, the navigation bar and every
// screen with its elements. Geometry and style live here as data; the widget
// package turns them into drawable screens. Layouts are read from TOML and
// validated before use.
package layout

import (
	"fmt"
	"strings"
)

// Kind is the type of an element on a screen.
type Kind string

const (
	KindButton   Kind = "button"
	KindLabel    Kind = "label"
	KindSlider   Kind = "slider"
	KindCheckBox Kind = "checkbox"
)

func (k *Kind) UnmarshalText(text []byte) error {
	switch v := Kind(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case KindButton, KindLabel, KindSlider, KindCheckBox:
		*k = v
		return nil
	default:
		return fmt.Errorf("unknown element kind %q", string(text))
	}
}

// Orientation of a slider.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// TickPosition controls where slider ticks are drawn.
type TickPosition string

const (
	TicksNone  TickPosition = "none"
	TicksBoth  TickPosition = "both"
	TicksAbove TickPosition = "above" // left of a vertical slider
	TicksBelow TickPosition = "below" // right of a vertical slider
)

// Style holds the static visual attributes of an element.
type Style struct {
	TextColor       Color `toml:"text_color"`
	BackgroundColor Color `toml:"background_color"`
	HoverColor      Color `toml:"hover_color"`
	PressedColor    Color `toml:"pressed_color"`
	BorderColor     Color `toml:"border_color"`
	AccentColor     Color `toml:"accent_color"` // slider fill and handle, check mark
	BorderWidth     int32 `toml:"border_width"`
	Radius          int32 `toml:"radius"`
	FontSize        int32 `toml:"font_size"`
}

// Element is one widget on a screen.
type Element struct {
	Kind   Kind   `toml:"kind"`
	Text   string `toml:"text"`
	TextID string `toml:"text_id"` // i18n message id, Text is the fallback
	X      int32  `toml:"x"`
	Y      int32  `toml:"y"`
	Width  int32  `toml:"width"`
	Height int32  `toml:"height"`
	Style  Style  `toml:"style"`

	// Target makes a button switch to another screen when clicked.
	Target *int `toml:"target"`

	// Slider
	Minimum      int          `toml:"minimum"`
	Maximum      int          `toml:"maximum"`
	Value        int          `toml:"value"`
	TickInterval int          `toml:"tick_interval"`
	Orientation  Orientation  `toml:"orientation"`
	TickPosition TickPosition `toml:"tick_position"`

	// Check box
	Checked bool `toml:"checked"`
}

// Screen is one full-size page.
type Screen struct {
	Name       string    `toml:"name"`
	NameID     string    `toml:"name_id"`
	Background Color     `toml:"background"`
	Elements   []Element `toml:"element"`
}

// Window describes the top-level window.
type Window struct {
	Title         string `toml:"title"`
	Width         int32  `toml:"width"`
	Height        int32  `toml:"height"`
	InitialScreen int    `toml:"initial_screen"`
	Background    Color  `toml:"background"`
}

// Transition configures the slide animation.
type Transition struct {
	DurationMS int    `toml:"duration_ms"`
	Easing     string `toml:"easing"`
}

// Navigation configures the window-level "Go to" buttons, one per screen,
// stacked vertically from (X, Y).
type Navigation struct {
	Hidden  bool   `toml:"hidden"`
	X       int32  `toml:"x"`
	Y       int32  `toml:"y"`
	Width   int32  `toml:"width"`
	Height  int32  `toml:"height"`
	Spacing int32  `toml:"spacing"`
	Icons   bool   `toml:"icons"`
	TextID  string `toml:"text_id"`
	Style   Style  `toml:"style"`
}

// Layout is the complete declarative description of the carousel.
type Layout struct {
	Window     Window     `toml:"window"`
	Transition Transition `toml:"transition"`
	Navigation Navigation `toml:"navigation"`
	Screens    []Screen   `toml:"screen"`
}
