package internal

import (
	"github.com/BrandonKowalski/carousel/pkg/carousel/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// InputEvent is a virtual button press or release from any source.
type InputEvent struct {
	Button  constants.VirtualButton
	Pressed bool
	Source  string
}

var keyMapping = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_PAGEUP:    constants.VirtualButtonL1,
	sdl.K_PAGEDOWN:  constants.VirtualButtonR1,
	sdl.K_ESCAPE:    constants.VirtualButtonB,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_q:         constants.VirtualButtonQuit,
	sdl.K_1:         constants.VirtualButton1,
	sdl.K_2:         constants.VirtualButton2,
	sdl.K_3:         constants.VirtualButton3,
	sdl.K_4:         constants.VirtualButton4,
	sdl.K_5:         constants.VirtualButton5,
	sdl.K_6:         constants.VirtualButton6,
	sdl.K_7:         constants.VirtualButton7,
	sdl.K_8:         constants.VirtualButton8,
	sdl.K_9:         constants.VirtualButton9,
}

var controllerMapping = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
	sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonB,
}

var controllers = map[sdl.JoystickID]*sdl.GameController{}

// TranslateEvent maps keyboard and controller events to virtual buttons.
// Keyboard auto-repeat is dropped; DirectionalInput handles held keys.
func TranslateEvent(event sdl.Event) (InputEvent, bool) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return InputEvent{}, false
		}
		button, ok := keyMapping[e.Keysym.Sym]
		if !ok {
			return InputEvent{}, false
		}
		return InputEvent{Button: button, Pressed: e.State == sdl.PRESSED, Source: "keyboard"}, true

	case *sdl.ControllerButtonEvent:
		button, ok := controllerMapping[sdl.GameControllerButton(e.Button)]
		if !ok {
			return InputEvent{}, false
		}
		return InputEvent{Button: button, Pressed: e.State == sdl.PRESSED, Source: "controller"}, true

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			closeController(e.Which)
		}
	}
	return InputEvent{}, false
}

// OpenControllers opens every game controller already connected.
func OpenControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		openController(i)
	}
}

func openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		GetInternalLogger().Warn("Failed to open game controller", "index", index, "error", sdl.GetError())
		return
	}
	id := controller.Joystick().InstanceID()
	if _, open := controllers[id]; open {
		controller.Close()
		return
	}
	controllers[id] = controller
	GetInternalLogger().Debug("Opened game controller", "index", index, "name", controller.Name())
}

func closeController(id sdl.JoystickID) {
	if controller, ok := controllers[id]; ok {
		controller.Close()
		delete(controllers, id)
	}
}

// CloseAllControllers closes every open game controller.
func CloseAllControllers() {
	for id := range controllers {
		closeController(id)
	}
}
