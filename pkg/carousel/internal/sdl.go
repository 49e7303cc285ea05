package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up SDL, SDL_ttf and SDL_image, opens the window at the given
// logical size and resolves the UI font.
func Init(title string, width, height int32, winOpts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		GetInternalLogger().Warn("SDL_image init incomplete", "error", err)
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1")

	var err error
	window, err = initWindow(title, width, height, winOpts)
	if err != nil {
		img.Quit()
		ttf.Quit()
		sdl.Quit()
		return err
	}

	if err := initFonts(GetTheme().FontPath); err != nil {
		window.closeWindow()
		img.Quit()
		ttf.Quit()
		sdl.Quit()
		return err
	}

	OpenControllers()
	return nil
}

func SDLCleanup() {
	CloseAllControllers()
	closeFonts()
	if window != nil {
		window.closeWindow()
		window = nil
	}
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
