package transition

import "strings"

// Easing maps linear progress in [0,1] to eased progress in [0,1].
type Easing func(t float64) float64

// Linear moves at constant speed.
func Linear(t float64) float64 {
	return clamp01(t)
}

// InQuad accelerates from zero velocity.
func InQuad(t float64) float64 {
	t = clamp01(t)
	return t * t
}

// OutQuad decelerates to zero velocity.
func OutQuad(t float64) float64 {
	t = clamp01(t)
	return t * (2 - t)
}

// InOutQuad accelerates until halfway, then decelerates.
func InOutQuad(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// InOutCubic is a steeper variant of InOutQuad.
func InOutCubic(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := 2*t - 2
	return 0.5*f*f*f + 1
}

var easings = map[string]Easing{
	"linear":       Linear,
	"in-quad":      InQuad,
	"out-quad":     OutQuad,
	"in-out-quad":  InOutQuad,
	"in-out-cubic": InOutCubic,
}

// EasingByName looks up an easing curve by its layout name
// ("linear", "in-quad", "out-quad", "in-out-quad", "in-out-cubic").
func EasingByName(name string) (Easing, bool) {
	e, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
