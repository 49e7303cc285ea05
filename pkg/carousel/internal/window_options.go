package internal

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions selects SDL window flags. The zero value is a plain,
// fixed-size, shown window.
type WindowOptions struct {
	Borderless        bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable         bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen        bool // Fullscreen mode (SDL_WINDOW_FULLSCREEN)
	FullscreenDesktop bool // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	AlwaysOnTop       bool // Window stays above others (SDL_WINDOW_ALWAYS_ON_TOP)
	HiddenUntilReady  bool // Stay hidden until the first screen has settled
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32 = sdl.WINDOW_ALLOW_HIGHDPI

	if wo.HiddenUntilReady {
		flags |= sdl.WINDOW_HIDDEN
	} else {
		flags |= sdl.WINDOW_SHOWN
	}

	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	switch {
	case wo.FullscreenDesktop:
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	case wo.Fullscreen:
		flags |= sdl.WINDOW_FULLSCREEN
	}

	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	return flags
}
