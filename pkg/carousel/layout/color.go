package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGBA colour written as "#rrggbb" or "#rrggbbaa" in layout files.
// The zero value is unset; an explicit "#00000000" is set and transparent.
type Color struct {
	R, G, B, A uint8

	set bool
}

// RGB builds an opaque colour.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// RGBA builds a colour with alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a, set: true}
}

// Transparent is an explicitly set, fully transparent colour.
var Transparent = RGBA(0, 0, 0, 0)

// ParseColor parses "#rrggbb", "#rrggbbaa" or the short "#rgb" form.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid colour %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}

	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// IsZero reports whether the colour was never set.
func (c Color) IsZero() bool {
	return c == Color{}
}

func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// UnmarshalText accepts an empty string as unset.
func (c *Color) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*c = Color{}
		return nil
	}
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	if c.IsZero() {
		return []byte{}, nil
	}
	return []byte(c.String()), nil
}

// Hex packs the colour as 0xRRGGBB, dropping alpha.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
