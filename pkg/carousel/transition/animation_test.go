package transition

import (
	"math"
	"testing"
	"time"
)

func TestEasingEndpoints(t *testing.T) {
	for name, e := range easings {
		if got := e(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := e(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		if got := e(-1); got != 0 {
			t.Errorf("%s(-1) = %v, want clamped 0", name, got)
		}
	}
}

func TestInOutQuadIsSymmetric(t *testing.T) {
	if got := InOutQuad(0.5); got != 0.5 {
		t.Errorf("InOutQuad(0.5) = %v, want 0.5", got)
	}
	for _, x := range []float64{0.1, 0.25, 0.4} {
		a := InOutQuad(x)
		b := 1 - InOutQuad(1-x)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("InOutQuad(%v) = %v, mirror = %v", x, a, b)
		}
	}
	if InOutQuad(0.25) >= 0.25 {
		t.Error("InOutQuad should start slower than linear")
	}
}

func TestEasingByName(t *testing.T) {
	if _, ok := EasingByName(" In-Out-Quad "); !ok {
		t.Error("EasingByName should ignore case and spaces")
	}
	if _, ok := EasingByName("bounce"); ok {
		t.Error("EasingByName(bounce) should not exist")
	}
}

func TestAnimationValue(t *testing.T) {
	start := time.Unix(0, 0)
	a := NewAnimation(0, nil)

	if a.Duration() != DefaultDuration {
		t.Errorf("Duration() = %v, want %v", a.Duration(), DefaultDuration)
	}

	a.SetRange(Origin, Point{X: -1000})
	a.Start(start)

	if p, done := a.Value(start); p != Origin || done {
		t.Errorf("Value(start) = %v, %v", p, done)
	}

	p, done := a.Value(start.Add(250 * time.Millisecond))
	if done || p.X != -500 {
		t.Errorf("Value(half) = %v, %v, want x=-500", p, done)
	}

	p, done = a.Value(start.Add(time.Second))
	if !done || p != a.To() {
		t.Errorf("Value(after) = %v, %v, want %v, true", p, done, a.To())
	}
}

func TestLerp(t *testing.T) {
	got := Lerp(Point{X: 10, Y: 20}, Point{X: 20, Y: 0}, 0.25)
	if want := (Point{X: 13, Y: 15}); got != want {
		t.Errorf("Lerp() = %v, want %v", got, want)
	}
}
