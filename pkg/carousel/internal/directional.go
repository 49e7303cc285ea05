package internal

import (
	"time"

	"github.com/BrandonKowalski/carousel/pkg/carousel/constants"
)

// Direction is a horizontal paging direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

// DirectionalInput tracks a held Left or Right and decides when a held key
// pages again. It replaces keyboard and kernel auto-repeat for every source.
type DirectionalInput struct {
	held struct {
		left, right bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalInput creates a DirectionalInput with the default timing.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
	}
}

// SetHeld updates the held state for a button at time now. It returns true
// if the button was Left or Right.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool, now time.Time) bool {
	switch button {
	case constants.VirtualButtonLeft:
		d.held.left = held
	case constants.VirtualButtonRight:
		d.held.right = held
	default:
		return false
	}
	d.hasRepeated = false
	d.lastRepeatTime = now
	return true
}

// IsHeld returns true if either direction is held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held.left || d.held.right
}

// HeldDirection returns the held direction. Left wins if both are held.
func (d *DirectionalInput) HeldDirection() Direction {
	if d.held.left {
		return DirectionLeft
	}
	if d.held.right {
		return DirectionRight
	}
	return DirectionNone
}

// Update returns the direction to page in at time now, or DirectionNone.
// Call it every frame. The first repeat comes after repeatDelay, later ones
// every repeatInterval.
func (d *DirectionalInput) Update(now time.Time) Direction {
	if !d.IsHeld() {
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

// Reset clears held directions.
func (d *DirectionalInput) Reset() {
	d.held.left = false
	d.held.right = false
	d.hasRepeated = false
}

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}
