// Package carousel shows a fixed set of full-window screens and slides
// between them horizontally.
//
// The package handles SDL initialization, input, theming and drawing; the
// screens themselves are described by a layout (see package layout) and the
// sliding is done by package transition.
//
//	if err := carousel.Init(carousel.Options{WindowTitle: "Demo", Width: 1024, Height: 768}); err != nil {
//		log.Fatal(err)
//	}
//	defer carousel.Close()
//	err := carousel.Run(ctx, layout.Default(), carousel.RunOptions{})
package carousel

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/BrandonKowalski/carousel/pkg/carousel/constants"
	"github.com/BrandonKowalski/carousel/pkg/carousel/internal"
	"github.com/BrandonKowalski/carousel/pkg/carousel/platform/desktop"
)

// WindowOptions selects SDL window flags.
type WindowOptions = internal.WindowOptions

// Options configures window and theme initialization.
type Options struct {
	WindowTitle          string        // Window title displayed in windowed mode
	Width                int32         // Logical window width; screens slide by this much
	Height               int32         // Logical window height
	WindowOptions        WindowOptions // SDL window flags (borderless, fullscreen, etc.)
	PrimaryThemeColorHex uint32        // Custom accent color
	DarkTheme            bool          // Use the dark desktop theme
	FontPath             string        // Path to a TTF font; empty picks a system font
	BackgroundImagePath  string        // Optional image drawn behind the screens
	LogPath              string        // Full path for log file including filename (creates parent directories)
	LogLevel             string        // Application log level ("debug", "info", "warn", "error")
}

var initialized bool

// Init initializes SDL, the window and the theme. It locks the calling
// goroutine to its OS thread; Run and Close must be called from the same
// goroutine.
func Init(options Options) error {
	runtime.LockOSThread()

	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() || os.Getenv(constants.VerboseEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
		internal.SetLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
		internal.SetRawLogLevel(options.LogLevel)
	}

	theme := desktop.InitDesktopTheme(options.FontPath)
	if options.DarkTheme {
		theme = desktop.InitDarkTheme(options.FontPath)
	}
	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	theme.BackgroundImagePath = options.BackgroundImagePath
	internal.SetTheme(theme)

	width, height := options.Width, options.Height
	if width <= 0 || height <= 0 {
		width, height = 1024, 768
	}

	if err := internal.Init(options.WindowTitle, width, height, options.WindowOptions); err != nil {
		internal.GetInternalLogger().Error("Failed to initialize SDL", "error", err)
		return NewInfrastructureError("init", err)
	}

	initialized = true
	return nil
}

// Close releases all SDL resources and closes the log file.
// Must be called before program exit to prevent resource leaks.
func Close() {
	if !initialized {
		internal.CloseLogger()
		return
	}
	initialized = false
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
