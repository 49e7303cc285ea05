package internal

import "testing"

func TestMappedButtonsAreNamed(t *testing.T) {
	for key, button := range keyMapping {
		if button.GetName() == "Unknown" {
			t.Errorf("key %d maps to unnamed button %d", key, button)
		}
	}
	for b, button := range controllerMapping {
		if button.GetName() == "Unknown" {
			t.Errorf("controller button %d maps to unnamed button %d", b, button)
		}
	}
}
