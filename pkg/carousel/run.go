package carousel

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/carousel/pkg/carousel/constants"
	"github.com/BrandonKowalski/carousel/pkg/carousel/i18n"
	"github.com/BrandonKowalski/carousel/pkg/carousel/internal"
	"github.com/BrandonKowalski/carousel/pkg/carousel/layout"
	"github.com/BrandonKowalski/carousel/pkg/carousel/router"
	"github.com/BrandonKowalski/carousel/pkg/carousel/transition"
	"github.com/BrandonKowalski/carousel/pkg/carousel/widget"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// RunOptions configures the event loop.
type RunOptions struct {
	Translator   *i18n.Translator // Resolves text ids; English when nil
	Wrap         bool             // Next on the last screen goes to the first, and back
	InputDevice  string           // Optional evdev node read alongside SDL input (Linux only)
	HistoryDepth int              // Back history size; router.DefaultHistoryDepth when zero
}

// Run builds the screens described by l and runs the event loop until the
// window is closed, Quit is pressed or ctx is cancelled. It must be called
// from the goroutine that called Init.
func Run(ctx context.Context, l *layout.Layout, opts RunOptions) error {
	if l == nil {
		l = layout.Default()
	}

	win := internal.GetWindow()
	if !initialized || win == nil {
		return ErrNotInitialized
	}

	a, err := newApp(l, opts, win)
	if err != nil {
		return err
	}
	defer a.painter.Destroy()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if opts.InputDevice != "" {
		go func() {
			if err := internal.ListenEvdev(ctx, opts.InputDevice, a.external); err != nil {
				a.logger.Error("Input device listener stopped", "device", opts.InputDevice, "error", err)
			}
		}()
	}

	return a.loop(ctx)
}

type app struct {
	logger   *slog.Logger
	window   *internal.Window
	show     func() // Shows the window after the first settle
	painter  *internal.Painter
	screens  []*widget.Screen
	nav      *widget.NavBar
	switcher *transition.Switcher
	router   *router.Router

	directional internal.DirectionalInput
	external    chan internal.InputEvent
	quit        *atomic.Bool

	// pressedScreen is the screen a pointer press started on, if any.
	pressedScreen *widget.Screen
	navPressed    bool
	shown         bool
}

func newApp(l *layout.Layout, opts RunOptions, win *internal.Window) (*app, error) {
	tr := opts.Translator
	if tr == nil {
		var err error
		tr, err = i18n.New("")
		if err != nil {
			return nil, fmt.Errorf("carousel: translator: %w", err)
		}
	}

	if !l.Window.Background.IsZero() {
		theme := internal.GetTheme()
		theme.WindowColor = internal.ToSDL(l.Window.Background)
		internal.SetTheme(theme)
	}

	a := &app{
		logger:      internal.GetLogger(),
		window:      win,
		show:        win.Show,
		painter:     internal.NewPainter(),
		directional: internal.NewDirectionalInput(),
		external:    make(chan internal.InputEvent, 16),
		quit:        atomic.NewBool(false),
	}

	if err := a.wire(l, tr, opts, win.GetWidth, time.Now); err != nil {
		a.painter.Destroy()
		return nil, err
	}

	a.logger.Info("Carousel ready",
		"screens", len(a.screens),
		"initial", a.switcher.Current(),
		"duration", l.Transition.Duration(),
		"easing", l.Transition.Easing,
		"locale", tr.Language().String())

	return a, nil
}

// wire builds the screens, nav bar, switcher and router for l and settles
// on the initial screen.
func (a *app) wire(l *layout.Layout, tr *i18n.Translator, opts RunOptions, width func() int32, clock func() time.Time) error {
	a.screens = widget.Build(l, tr)
	a.nav = widget.NewNavBar(l.Navigation, a.screens, tr)

	easing, ok := transition.EasingByName(l.Transition.Easing)
	if !ok {
		easing = transition.InOutQuad
	}

	sw, err := transition.New(widget.Surfaces(a.screens), transition.Options{
		Duration:  l.Transition.Duration(),
		Easing:    easing,
		Width:     width,
		Clock:     clock,
		Initial:   l.Window.InitialScreen,
		OnSettled: a.settled,
		Logger:    a.logger,
	})
	if err != nil {
		return fmt.Errorf("carousel: %w", err)
	}
	a.switcher = sw

	a.router = router.New(len(a.screens), opts.Wrap, func(target router.Screen) error {
		return a.switcher.SwitchTo(int(target))
	})
	if opts.HistoryDepth > 0 {
		a.router.Stack().SetMaxDepth(opts.HistoryDepth)
	}

	a.settled(sw.Current())
	return nil
}

// settled runs once per completed switch and once at startup.
func (a *app) settled(index int) {
	for i, s := range a.screens {
		if i != index {
			s.Reset()
		}
	}
	a.nav.Attach(index)

	if !a.shown {
		a.show()
		a.shown = true
	}

	a.logger.Debug("Screen settled", "screen", index, "name", a.screens[index].Name)
}

func (a *app) loop(ctx context.Context) error {
	for !a.quit.Load() {
		select {
		case <-ctx.Done():
			a.logger.Info("Context cancelled, leaving event loop")
			return ctx.Err()
		default:
		}

		now := time.Now()

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			a.handleEvent(event, now)
		}

		a.drainExternal(now)

		if d := a.directional.Update(now); d != internal.DirectionNone {
			a.page(d)
		}

		a.switcher.Tick()
		a.draw()
	}

	a.logger.Info("Window closed")
	return nil
}

func (a *app) drainExternal(now time.Time) {
	for {
		select {
		case ev := <-a.external:
			a.handleInput(ev, now)
		default:
			return
		}
	}
}

func (a *app) handleEvent(event sdl.Event, now time.Time) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		a.quit.Store(true)

	case *sdl.MouseMotionEvent:
		p := transition.Point{X: e.X, Y: e.Y}
		a.nav.PointerMoved(p)
		for _, i := range a.switcher.Visible() {
			a.screens[i].PointerMoved(p)
		}

	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return
		}
		p := transition.Point{X: e.X, Y: e.Y}
		if e.State == sdl.PRESSED {
			a.pointerPressed(p)
		} else {
			a.pointerReleased(p)
		}

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_FOCUS_LOST {
			a.directional.Reset()
		}

	default:
		if ev, ok := internal.TranslateEvent(event); ok {
			a.handleInput(ev, now)
		}
	}
}

func (a *app) pointerPressed(p transition.Point) {
	if a.nav.PointerPressed(p) {
		a.navPressed = true
		return
	}
	s := a.screens[a.switcher.Current()]
	if s.PointerPressed(p) {
		a.pressedScreen = s
	}
}

func (a *app) pointerReleased(p transition.Point) {
	if a.navPressed {
		a.navPressed = false
		if target := a.nav.PointerReleased(p); target != widget.NoTarget {
			a.logger.Debug("Navigation button clicked", "target", target)
			a.navigate(router.Goto(router.Screen(target)))
		}
		return
	}

	s := a.pressedScreen
	a.pressedScreen = nil
	if s == nil {
		return
	}

	clicked := s.PointerReleased(p)
	if clicked == nil {
		return
	}
	a.logger.Info("Button clicked", "screen", s.Index, "text", clicked.Text)
	if clicked.Target != widget.NoTarget {
		a.navigate(router.Goto(router.Screen(clicked.Target)))
	}
}

func (a *app) handleInput(ev internal.InputEvent, now time.Time) {
	if a.directional.SetHeld(ev.Button, ev.Pressed, now) {
		if ev.Pressed {
			a.page(directionFor(ev.Button))
		}
		return
	}
	if !ev.Pressed {
		return
	}

	a.logger.Debug("Button pressed", "button", ev.Button.GetName(), "source", ev.Source)

	switch ev.Button {
	case constants.VirtualButtonL1:
		a.navigate(router.Previous())
	case constants.VirtualButtonR1:
		a.navigate(router.Next())
	case constants.VirtualButtonB:
		a.navigate(router.Back())
	case constants.VirtualButtonQuit:
		a.quit.Store(true)
	default:
		if n, ok := ev.Button.ScreenNumber(); ok {
			a.navigate(router.Goto(router.Screen(n - 1)))
		}
	}
}

func directionFor(button constants.VirtualButton) internal.Direction {
	if button == constants.VirtualButtonLeft {
		return internal.DirectionLeft
	}
	return internal.DirectionRight
}

func (a *app) page(d internal.Direction) {
	switch d {
	case internal.DirectionLeft:
		a.navigate(router.Previous())
	case internal.DirectionRight:
		a.navigate(router.Next())
	}
}

func (a *app) navigate(req router.Request) {
	from := a.switcher.Current()
	to, err := a.router.Navigate(router.Screen(from), req)
	if err != nil {
		if IsInvalidScreenIndex(err) {
			a.logger.Warn("Ignoring switch to missing screen", "action", req.Action.String(), "target", int(req.Target), "error", err)
			return
		}
		a.logger.Error("Navigation failed", "action", req.Action.String(), "error", err)
		return
	}
	if to == router.ScreenNone {
		return
	}

	a.pressedScreen = nil
	a.logger.Info("Switching screen", "from", from, "to", int(to), "action", req.Action.String())
}

func (a *app) draw() {
	a.window.Clear()
	for _, i := range a.switcher.Visible() {
		a.painter.DrawScreen(a.screens[i])
	}
	a.painter.DrawNavBar(a.nav)
	a.window.Present()
}
