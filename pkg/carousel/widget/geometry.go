package widget

import "github.com/BrandonKowalski/carousel/pkg/carousel/transition"

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H int32
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p transition.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Offset returns r moved by p.
func (r Rect) Offset(p transition.Point) Rect {
	return Rect{X: r.X + p.X, Y: r.Y + p.Y, W: r.W, H: r.H}
}

// Inset shrinks r by n on every side.
func (r Rect) Inset(n int32) Rect {
	w := r.W - 2*n
	h := r.H - 2*n
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + n, Y: r.Y + n, W: w, H: h}
}

// Center returns the middle point of r.
func (r Rect) Center() transition.Point {
	return transition.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
