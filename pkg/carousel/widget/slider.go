package widget

import (
	"math"

	"github.com/BrandonKowalski/carousel/pkg/carousel/layout"
)

const sliderMargin int32 = 10

// SliderGeometry is the computed drawing plan for a slider.
type SliderGeometry struct {
	Track Rect
	Fill  Rect
	Thumb Rect // bounding box of the round handle
	Ticks []Rect
}

// Fraction returns how far Value sits between Minimum and Maximum, in [0,1].
func (s SliderSpec) Fraction() float64 {
	span := s.Maximum - s.Minimum
	if span <= 0 {
		return 0
	}
	f := float64(s.Value-s.Minimum) / float64(span)
	return math.Max(0, math.Min(1, f))
}

// LayoutSlider computes track, fill, thumb and tick rectangles inside b.
func LayoutSlider(b Rect, s SliderSpec) SliderGeometry {
	horizontal := s.Orientation != layout.Vertical
	f := s.Fraction()

	thumb := minInt32(minInt32(maxInt32(b.H, 16), maxInt32(b.W, 16)), 32)

	var g SliderGeometry
	if horizontal {
		trackH := maxInt32(minInt32(b.H/3, 12), 8)
		trackW := maxInt32(b.W-2*sliderMargin, 8)
		g.Track = Rect{X: b.X + sliderMargin, Y: b.Y + b.H/2 - trackH/2, W: trackW, H: trackH}
		g.Fill = Rect{X: g.Track.X, Y: g.Track.Y, W: int32(math.Round(f * float64(trackW))), H: trackH}

		travel := maxInt32(b.W-2*sliderMargin-thumb, 0)
		cx := b.X + sliderMargin + int32(math.Round(f*float64(travel))) + thumb/2
		g.Thumb = Rect{X: cx - thumb/2, Y: b.Y + b.H/2 - thumb/2, W: thumb, H: thumb}
	} else {
		trackW := minInt32(b.W/3, 8)
		trackH := maxInt32(b.H-2*sliderMargin, 8)
		g.Track = Rect{X: b.X + b.W/2 - trackW/2, Y: b.Y + sliderMargin, W: trackW, H: trackH}
		fillH := int32(math.Round(f * float64(trackH)))
		g.Fill = Rect{X: g.Track.X, Y: g.Track.Y + trackH - fillH, W: trackW, H: fillH}

		travel := maxInt32(b.H-2*sliderMargin-thumb, 0)
		cy := b.Y + sliderMargin + int32(math.Round((1-f)*float64(travel))) + thumb/2
		g.Thumb = Rect{X: b.X + b.W/2 - thumb/2, Y: cy - thumb/2, W: thumb, H: thumb}
	}

	g.Ticks = sliderTicks(b, s, horizontal)
	return g
}

func sliderTicks(b Rect, s SliderSpec, horizontal bool) []Rect {
	span := s.Maximum - s.Minimum
	if s.TickPosition == layout.TicksNone || s.TickInterval <= 0 || span <= 0 {
		return nil
	}

	count := span/s.TickInterval + 1
	if count < 2 {
		return nil
	}

	ticks := make([]Rect, 0, count)
	for i := 0; i < count; i++ {
		t := float64(i) / float64(count-1)
		if horizontal {
			x := b.X + sliderMargin + int32(math.Round(t*float64(b.W-2*sliderMargin)))
			ticks = append(ticks, Rect{X: x, Y: b.Y + b.H/2 - 3, W: 1, H: 6})
		} else {
			y := b.Y + sliderMargin + int32(math.Round((1-t)*float64(b.H-2*sliderMargin)))
			ticks = append(ticks, Rect{X: b.X + b.W/2 - 3, Y: y, W: 6, H: 1})
		}
	}
	return ticks
}

// CheckBoxGeometry places the square box and the caption origin.
func CheckBoxGeometry(b Rect, fontSize int32) (box Rect, textX int32) {
	size := minInt32(maxInt32(fontSize+2, 12), b.H)
	box = Rect{X: b.X, Y: b.Y + b.H/2 - size/2, W: size, H: size}
	return box, box.X + size + 8
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
