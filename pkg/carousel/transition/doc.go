// Package transition animates horizontal slides between full-size screens.
//
// A Switcher owns an ordered set of screens, the index of the visible one and
// a single reusable Animation. SwitchTo never blocks: it positions the two
// screens involved, starts the animation and returns. The caller drives the
// animation by calling Tick once per frame.
//
// # Basic Usage
//
//	sw, err := transition.New(screens, transition.Options{
//	    Width:   func() int32 { return window.GetWidth() },
//	    Initial: 1,
//	    OnSettled: func(index int) {
//	        navBar.Attach(index)
//	    },
//	})
//
//	// On a button click
//	if err := sw.SwitchTo(0); err != nil {
//	    // errors.Is(err, transition.ErrInvalidScreenIndex)
//	}
//
//	// Every frame
//	sw.Tick()
//	for _, i := range sw.Visible() {
//	    draw(sw.Screen(i))
//	}
//
// # Completion
//
// Exactly one completion is pending at a time. Starting a new switch while
// another is still sliding replaces the pending completion, so OnSettled runs
// once for the newest target only.
package transition
