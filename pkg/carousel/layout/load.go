package layout

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Parse decodes a TOML layout, applies defaults and validates it.
// Keys the schema does not know are rejected so typos surface early.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	md, err := toml.Decode(string(data), &l)
	if err != nil {
		return nil, fmt.Errorf("layout: decode: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("layout: unknown keys: %s", strings.Join(keys, ", "))
	}

	l.ApplyDefaults()

	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads a layout file. An empty path returns the embedded default.
func Load(path string) (*Layout, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("layout: %s does not exist: %w", path, err)
		}
		return nil, fmt.Errorf("layout: read %s: %w", path, err)
	}

	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Encode writes l as TOML.
func Encode(l *Layout) ([]byte, error) {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(l); err != nil {
		return nil, fmt.Errorf("layout: encode: %w", err)
	}
	return []byte(sb.String()), nil
}
