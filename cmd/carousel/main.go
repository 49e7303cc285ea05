package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/carousel/pkg/carousel"
	"github.com/BrandonKowalski/carousel/pkg/carousel/i18n"
	"github.com/BrandonKowalski/carousel/pkg/carousel/layout"
	"github.com/BrandonKowalski/carousel/pkg/carousel/settings"
)

// Build variables - set by ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	var configPath, layoutPath string
	var showVersion, dumpLayout bool

	flag.StringVar(&configPath, "config", "", "settings file (default is $XDG_CONFIG_HOME/carousel/settings.toml)")
	flag.StringVar(&layoutPath, "layout", "", "layout file (overrides layout_path from settings)")
	flag.BoolVar(&dumpLayout, "dump-layout", false, "print the built-in layout and exit")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("carousel %s (%s)\n", version, commit)
		return
	}

	if dumpLayout {
		os.Stdout.Write(layout.DefaultTOML())
		return
	}

	if err := run(configPath, layoutPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, layoutPath string) error {
	cfg, err := settings.Load(configPath)
	if err != nil {
		return err
	}
	if layoutPath == "" {
		layoutPath = cfg.LayoutPath
	}

	l, err := layout.Load(layoutPath)
	if err != nil {
		return err
	}

	tr, err := i18n.New(cfg.Locale)
	if err != nil {
		return err
	}
	if cfg.LocalePath != "" {
		if err := tr.LoadFile(cfg.LocalePath); err != nil {
			return err
		}
	}

	if cfg.LogPath != "" {
		carousel.SetLogPath(cfg.LogPath)
	}

	title := l.Window.Title
	if title == "" {
		title = tr.Text(i18n.MsgWindowTitle, "Screen Switcher")
	}

	err = carousel.Init(carousel.Options{
		WindowTitle: title,
		Width:       l.Window.Width,
		Height:      l.Window.Height,
		WindowOptions: carousel.WindowOptions{
			FullscreenDesktop: cfg.Fullscreen,
			HiddenUntilReady:  true,
		},
		DarkTheme:           cfg.Theme == "dark",
		FontPath:            cfg.FontPath,
		BackgroundImagePath: cfg.BackgroundImage,
		LogLevel:            cfg.LogLevel,
	})
	if err != nil {
		return err
	}
	defer carousel.Close()

	logger := carousel.GetLogger()
	logger.Info("Starting carousel", "version", version, "layout", layoutPath, "locale", cfg.Locale)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = carousel.Run(ctx, l, carousel.RunOptions{
		Translator:  tr,
		Wrap:        cfg.Wrap,
		InputDevice: cfg.InputDevice,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
