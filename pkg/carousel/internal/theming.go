package internal

import (
	"github.com/BrandonKowalski/carousel/pkg/carousel/layout"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme holds the window-wide colours and assets. Per-element colours come
// from the layout; the theme only fills what the layout leaves unset.
type Theme struct {
	WindowColor         sdl.Color // Behind the screens, visible at the edges mid-slide
	ScreenColor         sdl.Color // Screens without their own background
	TextColor           sdl.Color // Elements without a text colour
	AccentColor         sdl.Color // Slider fill, check marks, current nav icon
	FocusColor          sdl.Color // Outline of the nav button for the current screen
	FontPath            string    // Primary UI font
	BackgroundImagePath string    // Optional image drawn behind the screens
}

var currentTheme Theme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque colour.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// ToSDL converts a layout colour.
func ToSDL(c layout.Color) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Or returns c as an SDL colour, or fallback when c is unset.
func Or(c layout.Color, fallback sdl.Color) sdl.Color {
	if c.IsZero() {
		return fallback
	}
	return ToSDL(c)
}
