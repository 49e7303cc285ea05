package constants

import "testing"

func TestScreenNumber(t *testing.T) {
	if n, ok := VirtualButton1.ScreenNumber(); !ok || n != 1 {
		t.Errorf("VirtualButton1.ScreenNumber() = %d, %v", n, ok)
	}
	if n, ok := VirtualButton9.ScreenNumber(); !ok || n != 9 {
		t.Errorf("VirtualButton9.ScreenNumber() = %d, %v", n, ok)
	}
	if _, ok := VirtualButtonLeft.ScreenNumber(); ok {
		t.Error("Left is not a screen number")
	}
}

func TestGetName(t *testing.T) {
	if got := VirtualButton3.GetName(); got != "3" {
		t.Errorf("GetName() = %q, want 3", got)
	}
	if got := VirtualButtonQuit.GetName(); got != "Quit" {
		t.Errorf("GetName() = %q", got)
	}
	if got := VirtualButton(999).GetName(); got != "Unknown" {
		t.Errorf("GetName() = %q", got)
	}
}

func TestIsDevMode(t *testing.T) {
	t.Setenv(EnvironmentEnvVar, Development)
	if !IsDevMode() {
		t.Error("IsDevMode() = false with ENVIRONMENT=DEV")
	}
	t.Setenv(EnvironmentEnvVar, "")
	if IsDevMode() {
		t.Error("IsDevMode() = true without ENVIRONMENT")
	}
}
