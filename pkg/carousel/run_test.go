package carousel

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/BrandonKowalski/carousel/pkg/carousel/constants"
	"github.com/BrandonKowalski/carousel/pkg/carousel/i18n"
	"github.com/BrandonKowalski/carousel/pkg/carousel/internal"
	"github.com/BrandonKowalski/carousel/pkg/carousel/layout"
	"github.com/BrandonKowalski/carousel/pkg/carousel/router"
	"go.uber.org/atomic"
)

// testApp wires the default layout without a window. The returned counter
// tracks window shows and the clock is advanced through *now.
func testApp(t *testing.T) (*app, *bytes.Buffer, *int, *time.Time) {
	t.Helper()

	tr, err := i18n.New("en")
	if err != nil {
		t.Fatalf("i18n.New() error = %v", err)
	}

	var buf bytes.Buffer
	shows := 0
	now := time.Unix(1000, 0)

	a := &app{
		logger:      slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		show:        func() { shows++ },
		directional: internal.NewDirectionalInput(),
		quit:        atomic.NewBool(false),
	}
	width := func() int32 { return 800 }
	if err := a.wire(layout.Default(), tr, RunOptions{}, width, func() time.Time { return now }); err != nil {
		t.Fatalf("wire() error = %v", err)
	}
	return a, &buf, &shows, &now
}

func TestStartupSettlesAndShows(t *testing.T) {
	a, _, shows, _ := testApp(t)

	if !a.nav.Attached() || a.nav.Current() != 0 {
		t.Errorf("nav attached %v current %d, want attached to 0", a.nav.Attached(), a.nav.Current())
	}
	if *shows != 1 {
		t.Errorf("window shown %d times, want 1", *shows)
	}
}

func TestNavigateReattachesNavOnSettle(t *testing.T) {
	a, buf, shows, now := testApp(t)

	a.navigate(router.Goto(1))
	if !strings.Contains(buf.String(), "Switching screen") {
		t.Errorf("log missing switch line:\n%s", buf.String())
	}
	if a.nav.Current() != 0 {
		t.Errorf("nav moved to %d before the slide settled", a.nav.Current())
	}

	*now = now.Add(250 * time.Millisecond)
	a.switcher.Tick()
	if a.nav.Current() != 0 {
		t.Errorf("nav moved to %d mid-slide", a.nav.Current())
	}

	*now = now.Add(300 * time.Millisecond)
	a.switcher.Tick()
	if a.nav.Current() != 1 || !a.nav.Attached() {
		t.Errorf("after settle nav current %d attached %v, want 1", a.nav.Current(), a.nav.Attached())
	}
	if *shows != 1 {
		t.Errorf("window shown %d times, want 1", *shows)
	}
}

func TestDigitOutOfRangeWarns(t *testing.T) {
	a, buf, _, now := testApp(t)

	a.handleInput(internal.InputEvent{Button: constants.VirtualButton7, Pressed: true, Source: "keyboard"}, *now)

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "Ignoring switch to missing screen") {
		t.Errorf("want a warning for screen 7:\n%s", out)
	}
	if a.switcher.Current() != 0 {
		t.Errorf("current = %d, want 0", a.switcher.Current())
	}
	if a.switcher.Tick() {
		t.Error("no slide should start for a missing screen")
	}
}

func TestDigitInRangeSwitches(t *testing.T) {
	a, _, _, now := testApp(t)

	a.handleInput(internal.InputEvent{Button: constants.VirtualButton2, Pressed: true}, *now)
	if a.switcher.Current() != 1 {
		t.Errorf("current = %d, want 1", a.switcher.Current())
	}
}

func TestQuitButton(t *testing.T) {
	a, _, _, now := testApp(t)

	a.handleInput(internal.InputEvent{Button: constants.VirtualButtonQuit, Pressed: true}, *now)
	if !a.quit.Load() {
		t.Error("Quit should stop the loop")
	}
}
