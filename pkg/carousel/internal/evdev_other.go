//go:build !linux

package internal

import (
	"context"
	"errors"
)

// ErrEvdevUnsupported is returned on platforms without evdev.
var ErrEvdevUnsupported = errors.New("evdev input is only available on linux")

func ListenEvdev(ctx context.Context, path string, out chan<- InputEvent) error {
	return ErrEvdevUnsupported
}
