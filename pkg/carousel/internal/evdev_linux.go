//go:build linux

package internal

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/carousel/pkg/carousel/constants"
	"github.com/holoplot/go-evdev"
)

var evdevMapping = map[evdev.EvCode]constants.VirtualButton{
	evdev.KEY_LEFT:       constants.VirtualButtonLeft,
	evdev.KEY_RIGHT:      constants.VirtualButtonRight,
	evdev.KEY_ESC:        constants.VirtualButtonB,
	evdev.KEY_BACKSPACE:  constants.VirtualButtonB,
	evdev.KEY_Q:          constants.VirtualButtonQuit,
	evdev.KEY_1:          constants.VirtualButton1,
	evdev.KEY_2:          constants.VirtualButton2,
	evdev.KEY_3:          constants.VirtualButton3,
	evdev.KEY_4:          constants.VirtualButton4,
	evdev.KEY_5:          constants.VirtualButton5,
	evdev.KEY_6:          constants.VirtualButton6,
	evdev.KEY_7:          constants.VirtualButton7,
	evdev.KEY_8:          constants.VirtualButton8,
	evdev.KEY_9:          constants.VirtualButton9,
	evdev.BTN_DPAD_LEFT:  constants.VirtualButtonLeft,
	evdev.BTN_DPAD_RIGHT: constants.VirtualButtonRight,
	evdev.BTN_TL:         constants.VirtualButtonL1,
	evdev.BTN_TR:         constants.VirtualButtonR1,
	evdev.BTN_EAST:       constants.VirtualButtonB,
}

// ListenEvdev reads key events from the input device at path and sends them
// on out until ctx is done or the device fails. Value 2 (kernel repeat) is
// dropped; held keys are handled by DirectionalInput.
func ListenEvdev(ctx context.Context, path string, out chan<- InputEvent) error {
	dev, err := evdev.Open(path)
	if err != nil {
		return fmt.Errorf("open input device %s: %w", path, err)
	}

	name, _ := dev.Name()
	GetInternalLogger().Info("Listening on input device", "path", path, "name", name)

	go func() {
		<-ctx.Done()
		dev.Close()
	}()

	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read input device %s: %w", path, err)
		}

		if ev.Type != evdev.EV_KEY || ev.Value > 1 {
			continue
		}

		button, ok := evdevMapping[ev.Code]
		if !ok {
			continue
		}

		select {
		case out <- InputEvent{Button: button, Pressed: ev.Value == 1, Source: "evdev"}:
		case <-ctx.Done():
			return nil
		}
	}
}
