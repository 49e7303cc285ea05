package router

import "fmt"

// Screen is the index of a screen in the carousel.
type Screen int

// ScreenNone is returned when a request resolves to no screen.
const ScreenNone Screen = -1

// Action is a kind of navigation request.
type Action int

const (
	ActionGoto     Action = iota // Jump to Request.Target
	ActionNext                   // Next screen to the right
	ActionPrevious               // Previous screen to the left
	ActionBack                   // Most recently left screen
)

func (a Action) String() string {
	switch a {
	case ActionGoto:
		return "goto"
	case ActionNext:
		return "next"
	case ActionPrevious:
		return "previous"
	case ActionBack:
		return "back"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Request asks the router for a destination.
type Request struct {
	Action Action
	Target Screen // Only used by ActionGoto
}

// Goto builds an ActionGoto request.
func Goto(target Screen) Request {
	return Request{Action: ActionGoto, Target: target}
}

// Next builds an ActionNext request.
func Next() Request {
	return Request{Action: ActionNext}
}

// Previous builds an ActionPrevious request.
func Previous() Request {
	return Request{Action: ActionPrevious}
}

// Back builds an ActionBack request.
func Back() Request {
	return Request{Action: ActionBack}
}

// SwitchFunc performs the actual screen change.
type SwitchFunc func(target Screen) error

// Router turns navigation requests into screen switches and keeps the
// history needed for back navigation.
type Router struct {
	count    int
	wrap     bool
	stack    *Stack
	onSwitch SwitchFunc
}

// New creates a Router for count screens. With wrap set, Next on the last
// screen goes to the first and Previous on the first goes to the last.
func New(count int, wrap bool, fn SwitchFunc) *Router {
	return &Router{
		count:    count,
		wrap:     wrap,
		stack:    NewStack(DefaultHistoryDepth),
		onSwitch: fn,
	}
}

// Resolve returns the destination of req when standing on current.
// It does not modify the history. ok is false when there is nowhere to go.
func (r *Router) Resolve(current Screen, req Request) (Screen, bool) {
	switch req.Action {
	case ActionGoto:
		if req.Target < 0 || int(req.Target) >= r.count {
			return ScreenNone, false
		}
		return req.Target, req.Target != current
	case ActionNext:
		next := current + 1
		if int(next) >= r.count {
			if !r.wrap {
				return ScreenNone, false
			}
			next = 0
		}
		return next, next != current
	case ActionPrevious:
		prev := current - 1
		if prev < 0 {
			if !r.wrap {
				return ScreenNone, false
			}
			prev = Screen(r.count - 1)
		}
		return prev, prev != current
	case ActionBack:
		entry := r.stack.Peek()
		if entry == nil {
			return ScreenNone, false
		}
		return entry.Screen, entry.Screen != current
	}
	return ScreenNone, false
}

// Navigate resolves req and performs the switch. Forward moves push current
// onto the history; ActionBack pops it. It returns the destination, or
// ScreenNone if nothing happened.
func (r *Router) Navigate(current Screen, req Request) (Screen, error) {
	if req.Action == ActionBack {
		// Drop entries that point at the screen already shown.
		for entry := r.stack.Peek(); entry != nil && entry.Screen == current; entry = r.stack.Peek() {
			r.stack.Pop()
		}
	}

	next, ok := r.Resolve(current, req)
	if !ok {
		if req.Action == ActionGoto && (req.Target < 0 || int(req.Target) >= r.count) {
			// Let the switch function report its own error for the bad index.
			if r.onSwitch != nil {
				if err := r.onSwitch(req.Target); err != nil {
					return ScreenNone, fmt.Errorf("router: switch to screen %d: %w", req.Target, err)
				}
			}
			return ScreenNone, fmt.Errorf("router: screen %d out of range", req.Target)
		}
		return ScreenNone, nil
	}

	if r.onSwitch != nil {
		if err := r.onSwitch(next); err != nil {
			return ScreenNone, fmt.Errorf("router: switch to screen %d: %w", next, err)
		}
	}

	if req.Action == ActionBack {
		r.stack.Pop()
	} else {
		r.stack.Push(current, req.Action)
	}

	return next, nil
}

// Stack returns the navigation history.
func (r *Router) Stack() *Stack {
	return r.stack
}

// Len returns the number of screens the router knows about.
func (r *Router) Len() int {
	return r.count
}
