// Package settings loads application settings from a TOML file and the
// environment. Env var overrides use the prefix CAROUSEL_.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CAROUSEL_LOCALE.
const EnvPrefix = "CAROUSEL"

// ConfigEnvVar names an explicit settings file.
const ConfigEnvVar = EnvPrefix + "_CONFIG"

// Settings holds everything the launcher needs besides the layout itself.
type Settings struct {
	LayoutPath      string `mapstructure:"layout_path"`
	LocalePath      string `mapstructure:"locale_path"` // extra go-i18n message file
	Locale          string `mapstructure:"locale"`
	LogLevel        string `mapstructure:"log_level"`
	LogPath         string `mapstructure:"log_path"`
	FontPath        string `mapstructure:"font_path"`
	BackgroundImage string `mapstructure:"background_image"`
	Theme           string `mapstructure:"theme"`        // "light" or "dark"
	InputDevice     string `mapstructure:"input_device"` // evdev node, Linux only
	Fullscreen      bool   `mapstructure:"fullscreen"`
	Wrap            bool   `mapstructure:"wrap"`
}

// Load reads settings from path, or from CAROUSEL_CONFIG, or from
// $XDG_CONFIG_HOME/carousel/settings.toml. A missing file is not an error.
func Load(path string) (Settings, error) {
	v := viper.New()

	v.SetDefault("layout_path", "")
	v.SetDefault("locale_path", "")
	v.SetDefault("locale", "en")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_path", "")
	v.SetDefault("font_path", "")
	v.SetDefault("background_image", "")
	v.SetDefault("theme", "light")
	v.SetDefault("input_device", "")
	v.SetDefault("fullscreen", false)
	v.SetDefault("wrap", false)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}
	explicit := path != ""

	if explicit {
		v.SetConfigFile(path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "carousel"))
		v.SetConfigName("settings")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
		case explicit && errors.Is(err, os.ErrNotExist):
			return Settings{}, fmt.Errorf("settings: %s does not exist: %w", path, err)
		default:
			return Settings{}, fmt.Errorf("settings: read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("settings: unmarshal: %w", err)
	}

	s.Theme = strings.ToLower(strings.TrimSpace(s.Theme))
	if s.Theme != "light" && s.Theme != "dark" {
		return Settings{}, fmt.Errorf("settings: unknown theme %q (want light or dark)", s.Theme)
	}
	return s, nil
}
