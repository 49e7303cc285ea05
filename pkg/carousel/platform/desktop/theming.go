// Package desktop provides the default theme for desktop windows.
package desktop

import (
	"github.com/BrandonKowalski/carousel/pkg/carousel/internal"
)

// InitDesktopTheme creates a light theme with the given font. An empty font
// path lets the font loader pick a system font.
func InitDesktopTheme(fontPath string) internal.Theme {
	return internal.Theme{
		WindowColor: internal.HexToColor(0x202020),
		ScreenColor: internal.HexToColor(0xFFFFFF),
		TextColor:   internal.HexToColor(0x000000),
		AccentColor: internal.HexToColor(0x3B82F6),
		FocusColor:  internal.HexToColor(0x1D4ED8),
		FontPath:    fontPath,
	}
}

// InitDarkTheme creates a dark variant with the given font.
func InitDarkTheme(fontPath string) internal.Theme {
	return internal.Theme{
		WindowColor: internal.HexToColor(0x000000),
		ScreenColor: internal.HexToColor(0x1F1F1F),
		TextColor:   internal.HexToColor(0xF0F0F0),
		AccentColor: internal.HexToColor(0x60A5FA),
		FocusColor:  internal.HexToColor(0xFFFFFF),
		FontPath:    fontPath,
	}
}
