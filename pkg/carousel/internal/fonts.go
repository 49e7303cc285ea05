package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// fallbackFonts are tried in order when no font path is configured.
var fallbackFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/noto/NotoSans-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	`C:\Windows\Fonts\arial.ttf`,
}

// ErrNoFont is returned when neither the configured font nor any fallback exists.
var ErrNoFont = errors.New("no usable font found")

// Fonts opens one ttf.Font per point size on demand.
type Fonts struct {
	path  string
	byPts map[int32]*ttf.Font
}

var fonts *Fonts

// ResolveFontPath returns preferred if it exists, else the first fallback
// present on this machine.
func ResolveFontPath(preferred string) (string, error) {
	candidates := fallbackFonts
	if preferred != "" {
		candidates = append([]string{preferred}, fallbackFonts...)
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			if p != preferred && preferred != "" {
				GetInternalLogger().Warn("Configured font missing, using fallback", "configured", preferred, "fallback", p)
			}
			return p, nil
		}
	}
	return "", ErrNoFont
}

func initFonts(preferred string) error {
	path, err := ResolveFontPath(preferred)
	if err != nil {
		return err
	}
	fonts = &Fonts{path: path, byPts: make(map[int32]*ttf.Font)}
	GetInternalLogger().Debug("Using font", "path", path)
	return nil
}

// Get returns the font at size points, opening it on first use.
func (f *Fonts) Get(size int32) (*ttf.Font, error) {
	if font, ok := f.byPts[size]; ok {
		return font, nil
	}
	font, err := ttf.OpenFont(f.path, int(size))
	if err != nil {
		return nil, fmt.Errorf("open font %s at %dpt: %w", f.path, size, err)
	}
	f.byPts[size] = font
	return font, nil
}

func closeFonts() {
	if fonts == nil {
		return
	}
	for _, font := range fonts.byPts {
		font.Close()
	}
	fonts.byPts = nil
	fonts = nil
}
