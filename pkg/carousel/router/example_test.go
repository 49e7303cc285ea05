package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/carousel/pkg/carousel/router"
)

// Screen identifiers - use typed constants for readability
const (
	ScreenHome router.Screen = iota
	ScreenDetails
	ScreenSettings
)

// Example demonstrates relative navigation and going back.
func Example() {
	current := ScreenHome

	r := router.New(3, false, func(target router.Screen) error {
		fmt.Printf("switch %d -> %d\n", current, target)
		current = target
		return nil
	})

	r.Navigate(current, router.Next())
	r.Navigate(current, router.Next())

	// Already on the last screen and wrap is off: nothing happens
	if next, _ := r.Navigate(current, router.Next()); next == router.ScreenNone {
		fmt.Println("no screen after settings")
	}

	r.Navigate(current, router.Back())
	r.Navigate(current, router.Back())

	// Output:
	// switch 0 -> 1
	// switch 1 -> 2
	// no screen after settings
	// switch 2 -> 1
	// switch 1 -> 0
}

// Example_wrap demonstrates wrap-around and absolute jumps.
func Example_wrap() {
	current := ScreenHome

	r := router.New(3, true, func(target router.Screen) error {
		current = target
		return nil
	})

	r.Navigate(current, router.Previous())
	fmt.Println("previous from home:", current)

	r.Navigate(current, router.Goto(ScreenDetails))
	fmt.Println("goto details:", current)

	// Jumping to the screen already shown is not a navigation
	r.Navigate(current, router.Goto(ScreenDetails))
	fmt.Println("history depth:", r.Stack().Len())

	r.Navigate(current, router.Back())
	fmt.Println("back:", current)

	// Output:
	// previous from home: 2
	// goto details: 1
	// history depth: 2
	// back: 2
}
