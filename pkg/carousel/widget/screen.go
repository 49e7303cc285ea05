// Package widget builds drawable screens from a declarative layout.
//
// Nothing here talks to SDL. Screens and elements are plain data plus the
// pointer state machine for buttons.
package widget

import (
	"github.com/BrandonKowalski/carousel/pkg/carousel/i18n"
	"github.com/BrandonKowalski/carousel/pkg/carousel/layout"
	"github.com/BrandonKowalski/carousel/pkg/carousel/transition"
)

// NoTarget marks an element that does not switch screens.
const NoTarget = -1

// Screen is one full-size page. It implements transition.Surface.
type Screen struct {
	Index      int
	Name       string
	Background layout.Color
	Elements   []*Element

	pos transition.Point
}

func (s *Screen) Position() transition.Point {
	return s.pos
}

func (s *Screen) SetPosition(p transition.Point) {
	s.pos = p
}

// toLocal converts a window point to screen coordinates.
func (s *Screen) toLocal(p transition.Point) transition.Point {
	return transition.Point{X: p.X - s.pos.X, Y: p.Y - s.pos.Y}
}

// HitTest returns the topmost clickable element under the window point p.
func (s *Screen) HitTest(p transition.Point) *Element {
	local := s.toLocal(p)
	for i := len(s.Elements) - 1; i >= 0; i-- {
		e := s.Elements[i]
		if e.Clickable() && e.Bounds.Contains(local) {
			return e
		}
	}
	return nil
}

// PointerMoved updates hover state for every element.
func (s *Screen) PointerMoved(p transition.Point) {
	local := s.toLocal(p)
	for _, e := range s.Elements {
		e.PointerMoved(local)
	}
}

// PointerPressed arms the topmost button under p. It reports whether a
// button took the press.
func (s *Screen) PointerPressed(p transition.Point) bool {
	if e := s.HitTest(p); e != nil {
		return e.PointerPressed(s.toLocal(p))
	}
	return false
}

// PointerReleased completes clicks and returns the clicked element, if any.
func (s *Screen) PointerReleased(p transition.Point) *Element {
	local := s.toLocal(p)
	var clicked *Element
	for _, e := range s.Elements {
		if e.PointerReleased(local) && clicked == nil {
			clicked = e
		}
	}
	return clicked
}

// Reset clears hover and press state on every element.
func (s *Screen) Reset() {
	for _, e := range s.Elements {
		e.Reset()
	}
}

// Surfaces adapts screens for transition.New.
func Surfaces(screens []*Screen) []transition.Surface {
	out := make([]transition.Surface, len(screens))
	for i, s := range screens {
		out[i] = s
	}
	return out
}

// Build creates one Screen per layout screen. Text is resolved through tr.
func Build(l *layout.Layout, tr *i18n.Translator) []*Screen {
	screens := make([]*Screen, 0, len(l.Screens))

	for si, spec := range l.Screens {
		name := tr.Text(spec.NameID, spec.Name)
		if name == "" {
			name = tr.ScreenName(si)
		}

		screen := &Screen{
			Index:      si,
			Name:       name,
			Background: spec.Background,
			Elements:   make([]*Element, 0, len(spec.Elements)),
		}

		for _, es := range spec.Elements {
			screen.Elements = append(screen.Elements, buildElement(es, tr))
		}

		screens = append(screens, screen)
	}

	return screens
}

func buildElement(es layout.Element, tr *i18n.Translator) *Element {
	e := &Element{
		Kind:    es.Kind,
		Text:    tr.Text(es.TextID, es.Text),
		Bounds:  Rect{X: es.X, Y: es.Y, W: es.Width, H: es.Height},
		Style:   es.Style,
		Target:  NoTarget,
		Checked: es.Checked,
	}

	if es.Target != nil {
		e.Target = *es.Target
	}

	if es.Kind == layout.KindSlider {
		e.Slider = &SliderSpec{
			Minimum:      es.Minimum,
			Maximum:      es.Maximum,
			Value:        es.Value,
			TickInterval: es.TickInterval,
			Orientation:  es.Orientation,
			TickPosition: es.TickPosition,
		}
	}

	return e
}
