package layout

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/carousel/pkg/carousel/transition"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid layout")

func invalid(format string, args ...any) error {
	return fmt.Errorf("layout: %w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks the layout after defaults have been applied.
func (l *Layout) Validate() error {
	if len(l.Screens) == 0 {
		return invalid("at least one [[screen]] is required")
	}
	if l.Window.Width <= 0 || l.Window.Height <= 0 {
		return invalid("window size %dx%d", l.Window.Width, l.Window.Height)
	}
	if l.Window.InitialScreen < 0 || l.Window.InitialScreen >= len(l.Screens) {
		return invalid("initial_screen %d out of range [0,%d)", l.Window.InitialScreen, len(l.Screens))
	}
	if l.Transition.DurationMS < 0 {
		return invalid("transition duration_ms %d is negative", l.Transition.DurationMS)
	}
	if _, ok := transition.EasingByName(l.Transition.Easing); !ok {
		return invalid("unknown easing %q", l.Transition.Easing)
	}
	if l.Navigation.Width <= 0 || l.Navigation.Height <= 0 {
		return invalid("navigation button size %dx%d", l.Navigation.Width, l.Navigation.Height)
	}

	for si, screen := range l.Screens {
		for ei, el := range screen.Elements {
			if err := el.validate(len(l.Screens)); err != nil {
				return invalid("screen %d element %d: %v", si, ei, err)
			}
		}
	}
	return nil
}

func (e Element) validate(screens int) error {
	switch e.Kind {
	case KindButton, KindLabel, KindSlider, KindCheckBox:
	case "":
		return errors.New("kind is required")
	default:
		return fmt.Errorf("unknown kind %q", e.Kind)
	}

	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Errorf("size %dx%d", e.Width, e.Height)
	}
	if e.Style.FontSize <= 0 {
		return fmt.Errorf("font_size %d", e.Style.FontSize)
	}
	if e.Style.Radius < 0 || e.Style.BorderWidth < 0 {
		return errors.New("radius and border_width must not be negative")
	}

	if e.Target != nil {
		if e.Kind != KindButton {
			return fmt.Errorf("target is only valid on buttons, not %s", e.Kind)
		}
		if *e.Target < 0 || *e.Target >= screens {
			return fmt.Errorf("target %d out of range [0,%d)", *e.Target, screens)
		}
	}

	if e.Kind == KindSlider {
		if e.Maximum < e.Minimum {
			return fmt.Errorf("slider maximum %d below minimum %d", e.Maximum, e.Minimum)
		}
		if e.Value < e.Minimum || e.Value > e.Maximum {
			return fmt.Errorf("slider value %d outside [%d,%d]", e.Value, e.Minimum, e.Maximum)
		}
		if e.TickInterval < 0 {
			return fmt.Errorf("tick_interval %d", e.TickInterval)
		}
		switch e.Orientation {
		case Horizontal, Vertical:
		default:
			return fmt.Errorf("unknown orientation %q", e.Orientation)
		}
		switch e.TickPosition {
		case TicksNone, TicksBoth, TicksAbove, TicksBelow:
		default:
			return fmt.Errorf("unknown tick_position %q", e.TickPosition)
		}
	}
	return nil
}
