//go:build linux

package internal

import "testing"

func TestEvdevButtonsAreNamed(t *testing.T) {
	for code, button := range evdevMapping {
		if button.GetName() == "Unknown" {
			t.Errorf("evdev code %d maps to unnamed button %d", code, button)
		}
	}
}
