// Package internal contains the SDL side of the carousel: window and renderer
// setup, logging, theme, fonts, text textures, input mapping and drawing.
// Types and functions in this package are not part of the public API.
package internal
