package transition

import (
	"errors"
	"log/slog"
	"time"

	"go.uber.org/atomic"
)

// Surface is anything the switcher can slide around.
type Surface interface {
	Position() Point
	SetPosition(p Point)
}

// SettledFunc is called once a transition has finished and the target
// screen rests at the origin.
type SettledFunc func(index int)

// Options configures a Switcher.
type Options struct {
	Duration  time.Duration    // Slide length (default: DefaultDuration)
	Easing    Easing           // Interpolation curve (default: InOutQuad)
	Width     func() int32     // Viewport width, read at the start of every switch
	Initial   int              // Index shown first
	OnSettled SettledFunc      // Finalization hook, e.g. re-attach navigation
	Clock     func() time.Time // Time source (default: time.Now)
	Logger    *slog.Logger     // Optional debug logging
}

type completion struct {
	target int
}

// Switcher shows one screen at a time and slides between them.
// All methods except Current must be called from the UI goroutine.
type Switcher struct {
	screens   []Surface
	current   *atomic.Int32
	width     func() int32
	clock     func() time.Time
	onSettled SettledFunc
	logger    *slog.Logger

	anim      *Animation
	span      int32
	direction int
	outgoing  int
	incoming  int

	pending *completion
}

// New creates a Switcher showing screens[opts.Initial] at the origin.
// Every other screen is parked one viewport width to the right.
func New(screens []Surface, opts Options) (*Switcher, error) {
	if len(screens) == 0 {
		return nil, errors.New("transition: no screens")
	}
	if err := checkIndex(opts.Initial, len(screens)); err != nil {
		return nil, err
	}
	if opts.Width == nil {
		return nil, errors.New("transition: width function is required")
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	s := &Switcher{
		screens:   screens,
		current:   atomic.NewInt32(int32(opts.Initial)),
		width:     opts.Width,
		clock:     clock,
		onSettled: opts.OnSettled,
		logger:    opts.Logger,
		anim:      NewAnimation(opts.Duration, opts.Easing),
		outgoing:  -1,
		incoming:  -1,
	}

	w := s.width()
	for i, screen := range screens {
		if i == opts.Initial {
			screen.SetPosition(Origin)
		} else {
			screen.SetPosition(Point{X: w})
		}
	}

	return s, nil
}

// Current returns the active screen index. Safe from any goroutine.
func (s *Switcher) Current() int {
	return int(s.current.Load())
}

func (s *Switcher) Len() int {
	return len(s.screens)
}

// Screen returns the surface at index, or nil if out of range.
func (s *Switcher) Screen(index int) Surface {
	if index < 0 || index >= len(s.screens) {
		return nil
	}
	return s.screens[index]
}

// Animating reports whether a slide is in flight.
func (s *Switcher) Animating() bool {
	return s.anim.Running()
}

// Direction returns +1 or -1 for the running or last slide, 0 before the first.
func (s *Switcher) Direction() int {
	return s.direction
}

// Visible returns the screens to draw, back to front.
func (s *Switcher) Visible() []int {
	if s.anim.Running() && s.outgoing >= 0 {
		return []int{s.outgoing, s.incoming}
	}
	return []int{s.Current()}
}

// Pending reports the target of the completion waiting to run, if any.
func (s *Switcher) Pending() (int, bool) {
	if s.pending == nil {
		return 0, false
	}
	return s.pending.target, true
}

// SlideDirection is +1 when moving to a higher index and -1 otherwise.
func SlideDirection(current, target int) int {
	if target > current {
		return 1
	}
	return -1
}

// SwitchTo starts a slide to target and returns immediately.
// Switching to the current screen does nothing. An out-of-range target
// returns an error matching ErrInvalidScreenIndex and changes nothing.
func (s *Switcher) SwitchTo(target int) error {
	if err := checkIndex(target, len(s.screens)); err != nil {
		return err
	}

	current := s.Current()
	if target == current {
		return nil
	}

	if s.anim.Running() && s.outgoing >= 0 && s.outgoing != target {
		// The superseded slide's outgoing screen would otherwise stay mid-way.
		s.screens[s.outgoing].SetPosition(Point{X: -s.span * int32(s.direction)})
	}

	direction := SlideDirection(current, target)
	w := s.width()

	s.screens[target].SetPosition(Point{X: w * int32(direction)})
	s.screens[current].SetPosition(Origin)

	s.anim.SetRange(Origin, Point{X: -w * int32(direction)})

	if s.pending != nil && s.logger != nil {
		s.logger.Debug("Replacing pending transition", "previous", s.pending.target, "target", target)
	}
	s.pending = &completion{target: target}

	s.span = w
	s.direction = direction
	s.outgoing = current
	s.incoming = target
	s.current.Store(int32(target))

	s.anim.Start(s.clock())

	if s.logger != nil {
		s.logger.Debug("Switching screen", "from", current, "to", target, "direction", direction)
	}

	return nil
}

// Tick advances a running slide to the current clock time and runs the
// pending completion once the slide has finished. It reports whether any
// screen moved.
func (s *Switcher) Tick() bool {
	if !s.anim.Running() {
		return false
	}

	p, done := s.anim.Value(s.clock())
	s.screens[s.outgoing].SetPosition(p)
	s.screens[s.incoming].SetPosition(Point{X: p.X + s.span*int32(s.direction), Y: p.Y})

	if done {
		s.anim.Stop()
		s.complete()
	}

	return true
}

func (s *Switcher) complete() {
	c := s.pending
	s.pending = nil
	if c == nil {
		return
	}

	s.current.Store(int32(c.target))
	s.screens[c.target].SetPosition(Origin)
	s.outgoing = -1
	s.incoming = -1

	if s.logger != nil {
		s.logger.Debug("Transition settled", "screen", c.target)
	}

	if s.onSettled != nil {
		s.onSettled(c.target)
	}
}
