// Package router turns navigation requests into screen switches.
//
// Screens are identified by their index in the carousel. Requests are either
// absolute (Goto) or relative (Next, Previous, Back). The router resolves a
// request against the screen currently shown, hands the destination to a
// SwitchFunc and records where it came from so Back can return there.
//
// # Basic Usage
//
//	r := router.New(len(screens), false, func(target router.Screen) error {
//	    return switcher.SwitchTo(int(target))
//	})
//
//	// Right arrow
//	r.Navigate(router.Screen(switcher.Current()), router.Next())
//
//	// Nav button bound to screen 0
//	r.Navigate(router.Screen(switcher.Current()), router.Goto(0))
//
//	// Escape
//	r.Navigate(router.Screen(switcher.Current()), router.Back())
//
// # History
//
// Every successful forward move pushes the screen that was left. Back pops
// it. Entries equal to the current screen are skipped, so Back never
// "switches" to the screen already shown. History depth is bounded by
// DefaultHistoryDepth; the oldest entries are dropped first.
package router
