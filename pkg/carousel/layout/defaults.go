package layout

import (
	_ "embed"
	"time"
)

//go:embed default.toml
var defaultTOML []byte

// DefaultTOML returns the embedded default layout source.
func DefaultTOML() []byte {
	return append([]byte(nil), defaultTOML...)
}

// Default returns the embedded two-screen layout.
func Default() *Layout {
	l, err := Parse(defaultTOML)
	if err != nil {
		// The embedded file is part of the build; failing here is a programming error.
		panic("layout: invalid embedded default: " + err.Error())
	}
	return l
}

// Fallback values for fields a layout file leaves out.
const (
	DefaultWindowWidth  int32 = 1024
	DefaultWindowHeight int32 = 768
	DefaultDurationMS         = 500
	DefaultEasing             = "in-out-quad"
	DefaultFontSize     int32 = 14
)

var (
	buttonStyle = Style{
		TextColor:       RGB(0xff, 0xff, 0xff),
		BackgroundColor: RGB(0x3b, 0x82, 0xf6),
		HoverColor:      RGB(0x60, 0xa5, 0xfa),
		PressedColor:    RGB(0x1d, 0x4e, 0xd8),
		Radius:          4,
		FontSize:        16,
	}
	labelStyle = Style{
		TextColor:       RGB(0x00, 0x00, 0x00),
		BackgroundColor: RGB(0xf0, 0xf0, 0xf0),
		BorderColor:     RGB(0xcc, 0xcc, 0xcc),
		BorderWidth:     1,
		FontSize:        DefaultFontSize,
	}
	sliderStyle = Style{
		BackgroundColor: Color{},
		BorderColor:     RGB(0x5c, 0x5c, 0x5c),
		AccentColor:     RGB(0x3b, 0x82, 0xf6),
		FontSize:        DefaultFontSize,
	}
	checkBoxStyle = Style{
		TextColor:   RGB(0x00, 0x00, 0x00),
		BorderColor: RGB(0x5c, 0x5c, 0x5c),
		AccentColor: RGB(0x3b, 0x82, 0xf6),
		FontSize:    DefaultFontSize,
	}
	navigationStyle = Style{
		TextColor:       RGB(0x00, 0x00, 0x00),
		BackgroundColor: RGB(0xe5, 0xe7, 0xeb),
		HoverColor:      RGB(0xd1, 0xd5, 0xdb),
		PressedColor:    RGB(0x9c, 0xa3, 0xaf),
		BorderColor:     RGB(0x9c, 0xa3, 0xaf),
		BorderWidth:     1,
		Radius:          4,
		FontSize:        DefaultFontSize,
	}
)

// KindStyle returns the default style for a kind of element.
func KindStyle(k Kind) Style {
	switch k {
	case KindButton:
		return buttonStyle
	case KindLabel:
		return labelStyle
	case KindSlider:
		return sliderStyle
	case KindCheckBox:
		return checkBoxStyle
	default:
		return Style{FontSize: DefaultFontSize}
	}
}

// merge fills every unset field of s from def.
func (s Style) merge(def Style) Style {
	if s.TextColor.IsZero() {
		s.TextColor = def.TextColor
	}
	if s.BackgroundColor.IsZero() {
		s.BackgroundColor = def.BackgroundColor
	}
	if s.HoverColor.IsZero() {
		s.HoverColor = def.HoverColor
	}
	if s.PressedColor.IsZero() {
		s.PressedColor = def.PressedColor
	}
	if s.BorderColor.IsZero() {
		s.BorderColor = def.BorderColor
	}
	if s.AccentColor.IsZero() {
		s.AccentColor = def.AccentColor
	}
	if s.BorderWidth == 0 {
		s.BorderWidth = def.BorderWidth
	}
	if s.Radius == 0 {
		s.Radius = def.Radius
	}
	if s.FontSize == 0 {
		s.FontSize = def.FontSize
	}
	// Buttons without explicit hover/pressed colours keep their fill.
	if s.HoverColor.IsZero() {
		s.HoverColor = s.BackgroundColor
	}
	if s.PressedColor.IsZero() {
		s.PressedColor = s.HoverColor
	}
	return s
}

// ApplyDefaults fills unset fields in place.
func (l *Layout) ApplyDefaults() {
	if l.Window.Width == 0 {
		l.Window.Width = DefaultWindowWidth
	}
	if l.Window.Height == 0 {
		l.Window.Height = DefaultWindowHeight
	}
	if l.Window.Background.IsZero() {
		l.Window.Background = RGB(0xff, 0xff, 0xff)
	}
	if l.Transition.DurationMS == 0 {
		l.Transition.DurationMS = DefaultDurationMS
	}
	if l.Transition.Easing == "" {
		l.Transition.Easing = DefaultEasing
	}

	nav := &l.Navigation
	if nav.Width == 0 {
		nav.Width = 150
	}
	if nav.Height == 0 {
		nav.Height = 30
	}
	if nav.Spacing == 0 {
		nav.Spacing = nav.Height + 10
	}
	if nav.TextID == "" {
		nav.TextID = "NavigateTo"
	}
	nav.Style = nav.Style.merge(navigationStyle)

	for si := range l.Screens {
		screen := &l.Screens[si]
		if screen.Background.IsZero() {
			screen.Background = l.Window.Background
		}
		for ei := range screen.Elements {
			el := &screen.Elements[ei]
			el.Style = el.Style.merge(KindStyle(el.Kind))
			if el.Kind == KindSlider {
				el.applySliderDefaults()
			}
		}
	}
}

func (e *Element) applySliderDefaults() {
	if e.Minimum == 0 && e.Maximum == 0 {
		e.Maximum = 100
	}
	if e.Orientation == "" {
		e.Orientation = Horizontal
	}
	if e.TickPosition == "" {
		e.TickPosition = TicksBoth
	}
	if e.TickInterval == 0 {
		e.TickInterval = 10
	}
}

// Duration returns the transition duration.
func (t Transition) Duration() time.Duration {
	return time.Duration(t.DurationMS) * time.Millisecond
}
