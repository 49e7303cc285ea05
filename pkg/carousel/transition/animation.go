package transition

import (
	"math"
	"time"
)

// DefaultDuration is the slide length used when Options.Duration is zero.
const DefaultDuration = 500 * time.Millisecond

// Point is a position in window pixels.
type Point struct {
	X int32
	Y int32
}

// Origin is the top-left corner of the window.
var Origin = Point{}

// Lerp interpolates between a and b, rounding to the nearest pixel.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + int32(math.Round(float64(b.X-a.X)*t)),
		Y: a.Y + int32(math.Round(float64(b.Y-a.Y)*t)),
	}
}

// Animation interpolates a Point between two values over a fixed duration.
// It is reused across transitions: SetRange and Start reconfigure it in place.
type Animation struct {
	start     Point
	end       Point
	duration  time.Duration
	easing    Easing
	startedAt time.Time
	running   bool
}

// NewAnimation creates a stopped animation.
func NewAnimation(duration time.Duration, easing Easing) *Animation {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if easing == nil {
		easing = InOutQuad
	}
	return &Animation{duration: duration, easing: easing}
}

// SetRange sets the start and end values for the next run.
func (a *Animation) SetRange(start, end Point) {
	a.start = start
	a.end = end
}

// Start begins a run at now. A running animation restarts from its start value.
func (a *Animation) Start(now time.Time) {
	a.startedAt = now
	a.running = true
}

// Stop halts the animation without reaching the end value.
func (a *Animation) Stop() {
	a.running = false
}

func (a *Animation) Running() bool {
	return a.running
}

func (a *Animation) Duration() time.Duration {
	return a.duration
}

// To returns the configured end value.
func (a *Animation) To() Point {
	return a.end
}

// Progress returns the eased progress at now, in [0,1].
func (a *Animation) Progress(now time.Time) float64 {
	elapsed := now.Sub(a.startedAt)
	if elapsed <= 0 {
		return a.easing(0)
	}
	if elapsed >= a.duration {
		return 1
	}
	return a.easing(float64(elapsed) / float64(a.duration))
}

// Value returns the interpolated point at now and whether the run is over.
// Once the duration has elapsed the value is exactly To().
func (a *Animation) Value(now time.Time) (Point, bool) {
	if now.Sub(a.startedAt) >= a.duration {
		return a.end, true
	}
	return Lerp(a.start, a.end, a.Progress(now)), false
}
