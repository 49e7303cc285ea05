// Package icon rasterizes the small SVG glyphs drawn on navigation buttons.
package icon

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	"sort"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed svg/*.svg
var svgFS embed.FS

// Glyph names.
const (
	ChevronLeft  = "chevron-left"
	ChevronRight = "chevron-right"
	Current      = "current"
)

// Names lists the embedded glyphs.
func Names() []string {
	entries, err := svgFS.ReadDir("svg")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".svg"))
	}
	sort.Strings(names)
	return names
}

// ForTarget picks the glyph for a navigation button leading from current to target.
func ForTarget(current, target int) string {
	switch {
	case target < current:
		return ChevronLeft
	case target > current:
		return ChevronRight
	default:
		return Current
	}
}

// Rasterize renders glyph name into a size×size image tinted with c.
func Rasterize(name string, size int, c color.Color) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon: invalid size %d", size)
	}

	data, err := svgFS.ReadFile("svg/" + name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("icon: unknown glyph %q: %w", name, err)
	}

	svg, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("icon: parse %q: %w", name, err)
	}
	svg.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	svg.Draw(raster, 1.0)

	Tint(img, c)
	return img, nil
}

// Tint replaces the colour of every pixel with c, keeping its coverage.
func Tint(img *image.RGBA, c color.Color) {
	r, g, b, _ := c.RGBA()
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := uint32(img.Pix[i+3])
		// Pix is premultiplied; scale the tint by the existing alpha.
		img.Pix[i] = uint8((r >> 8) * a / 255)
		img.Pix[i+1] = uint8((g >> 8) * a / 255)
		img.Pix[i+2] = uint8((b >> 8) * a / 255)
	}
}
