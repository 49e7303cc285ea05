// Package constants defines shared constants, types, and configuration values
// used throughout the carousel.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"   // "DEV" enables development mode
	WindowWidthEnvVar  = "WINDOW_WIDTH"  // Overrides the layout window width
	WindowHeightEnvVar = "WINDOW_HEIGHT" // Overrides the layout window height
	VerboseEnvVar      = "CAROUSEL_VERBOSE"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical
// keys, controller buttons or evdev codes.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonB
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonQuit
	VirtualButton1
	VirtualButton2
	VirtualButton3
	VirtualButton4
	VirtualButton5
	VirtualButton6
	VirtualButton7
	VirtualButton8
	VirtualButton9
)

var buttonNames = map[VirtualButton]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonB:          "B",
	VirtualButtonL1:         "L1",
	VirtualButtonR1:         "R1",
	VirtualButtonQuit:       "Quit",
}

// GetName returns a display name for log lines.
func (vb VirtualButton) GetName() string {
	if name, ok := buttonNames[vb]; ok {
		return name
	}
	if n, ok := vb.ScreenNumber(); ok {
		return string(rune('0' + n))
	}
	return "Unknown"
}

// ScreenNumber returns the 1-based screen a digit button jumps to.
func (vb VirtualButton) ScreenNumber() (int, bool) {
	if vb >= VirtualButton1 && vb <= VirtualButton9 {
		return int(vb-VirtualButton1) + 1, true
	}
	return 0, false
}

// Default timing and spacing constants.
const (
	DefaultRepeatDelay    = 400 * time.Millisecond // Hold time before Left/Right starts repeating
	DefaultRepeatInterval = 600 * time.Millisecond // Repeat period; longer than a slide
	DefaultFrameTime      = 16 * time.Millisecond  // ~60fps when VSync is unavailable
	DefaultIconSize       = 18
	DefaultTextPadding    = 6
)
