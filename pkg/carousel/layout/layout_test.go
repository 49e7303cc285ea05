package layout

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	l := Default()

	if len(l.Screens) != 2 {
		t.Fatalf("default layout has %d screens, want 2", len(l.Screens))
	}
	if l.Window.InitialScreen != 1 {
		t.Errorf("InitialScreen = %d, want 1", l.Window.InitialScreen)
	}
	if l.Window.Width != 1528 || l.Window.Height != 1154 {
		t.Errorf("window = %dx%d, want 1528x1154", l.Window.Width, l.Window.Height)
	}
	if got := l.Transition.Duration().Milliseconds(); got != 500 {
		t.Errorf("duration = %dms, want 500ms", got)
	}

	for i, screen := range l.Screens {
		if len(screen.Elements) != 2 {
			t.Errorf("screen %d has %d elements, want 2", i, len(screen.Elements))
			continue
		}
		if screen.Elements[0].Kind != KindButton || screen.Elements[1].Kind != KindLabel {
			t.Errorf("screen %d kinds = %s, %s", i, screen.Elements[0].Kind, screen.Elements[1].Kind)
		}
	}

	button := l.Screens[0].Elements[0]
	if button.Style.BackgroundColor != RGB(59, 130, 246) {
		t.Errorf("button fill = %v, want rgb(59,130,246)", button.Style.BackgroundColor)
	}
	if button.Style.PressedColor != RGB(29, 78, 216) {
		t.Errorf("button pressed = %v", button.Style.PressedColor)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#3b82f6", want: RGB(59, 130, 246)},
		{in: "ffffff", want: RGB(255, 255, 255)},
		{in: "#000000ff", want: RGB(0, 0, 0)},
		{in: "#11223380", want: RGBA(0x11, 0x22, 0x33, 0x80)},
		{in: "#00000000", want: Transparent},
		{in: "#ccc", want: RGB(0xcc, 0xcc, 0xcc)},
		{in: "#12345", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorString(t *testing.T) {
	if got := RGB(59, 130, 246).String(); got != "#3b82f6" {
		t.Errorf("String() = %q", got)
	}
	if got := (Color{R: 1, G: 2, B: 3, A: 4}).String(); got != "#01020304" {
		t.Errorf("String() = %q", got)
	}
	if got := RGB(0x12, 0x34, 0x56).Hex(); got != 0x123456 {
		t.Errorf("Hex() = %#x", got)
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	l, err := Parse([]byte(`
[[screen]]
name = "Only"

  [[screen.element]]
  kind = "button"
  text = "Go"
  x = 1
  y = 2
  width = 30
  height = 40

  [[screen.element]]
  kind = "slider"
  x = 1
  y = 50
  width = 200
  height = 20
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if l.Window.Width != DefaultWindowWidth || l.Window.Height != DefaultWindowHeight {
		t.Errorf("window = %dx%d", l.Window.Width, l.Window.Height)
	}
	if l.Transition.Easing != DefaultEasing {
		t.Errorf("easing = %q", l.Transition.Easing)
	}

	button := l.Screens[0].Elements[0]
	if button.Style != KindStyle(KindButton) {
		t.Errorf("button style = %+v, want kind default", button.Style)
	}

	slider := l.Screens[0].Elements[1]
	if slider.Maximum != 100 || slider.Orientation != Horizontal || slider.TickPosition != TicksBoth {
		t.Errorf("slider defaults = %+v", slider)
	}
	if l.Screens[0].Background != l.Window.Background {
		t.Error("screen background should default to the window background")
	}
}

func TestParseKeepsExplicitTransparent(t *testing.T) {
	l, err := Parse([]byte(`
[[screen]]
name = "Only"

  [[screen.element]]
  kind = "label"
  text = "Clear"
  width = 100
  height = 20
  style = { background_color = "#00000000" }

  [[screen.element]]
  kind = "label"
  text = "Default"
  width = 100
  height = 20
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	clear := l.Screens[0].Elements[0].Style.BackgroundColor
	if clear != Transparent || clear.IsZero() {
		t.Errorf("explicit transparent fill = %v (unset %v), want kept", clear, clear.IsZero())
	}
	if got := l.Screens[0].Elements[1].Style.BackgroundColor; got != RGB(0xf0, 0xf0, 0xf0) {
		t.Errorf("unset label fill = %v, want #f0f0f0", got)
	}
}

func TestColorUnsetRoundTrip(t *testing.T) {
	var c Color
	text, err := c.MarshalText()
	if err != nil || len(text) != 0 {
		t.Fatalf("MarshalText(unset) = %q, %v", text, err)
	}
	got := RGB(1, 2, 3)
	if err := got.UnmarshalText(text); err != nil || !got.IsZero() {
		t.Errorf("UnmarshalText(%q) = %v, %v; want unset", text, got, err)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "no screens",
			src:  `[window]` + "\n" + `title = "x"`,
			want: "at least one",
		},
		{
			name: "unknown key",
			src: `
[[screen]]
name = "a"
colour = "#fff"
`,
			want: "unknown keys",
		},
		{
			name: "unknown kind",
			src: `
[[screen]]
  [[screen.element]]
  kind = "spinner"
  width = 1
  height = 1
`,
			want: "unknown element kind",
		},
		{
			name: "bad colour",
			src: `
[[screen]]
background = "blue"
`,
			want: "invalid colour",
		},
		{
			name: "initial out of range",
			src: `
[window]
initial_screen = 2
[[screen]]
[[screen]]
`,
			want: "initial_screen 2",
		},
		{
			name: "target out of range",
			src: `
[[screen]]
  [[screen.element]]
  kind = "button"
  width = 10
  height = 10
  target = 1
`,
			want: "target 1 out of range",
		},
		{
			name: "target on label",
			src: `
[[screen]]
[[screen]]
  [[screen.element]]
  kind = "label"
  width = 10
  height = 10
  target = 0
`,
			want: "only valid on buttons",
		},
		{
			name: "unknown easing",
			src: `
[transition]
easing = "bounce"
[[screen]]
`,
			want: "unknown easing",
		},
		{
			name: "slider value",
			src: `
[[screen]]
  [[screen.element]]
  kind = "slider"
  width = 10
  height = 10
  value = 150
`,
			want: "slider value 150",
		},
		{
			name: "zero size",
			src: `
[[screen]]
  [[screen.element]]
  kind = "label"
`,
			want: "size 0x0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestValidationErrorsWrapErrInvalid(t *testing.T) {
	_, err := Parse([]byte(`[window]` + "\n" + `width = 10`))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("error = %v, want ErrInvalid", err)
	}
}

func TestLoad(t *testing.T) {
	l, err := Load("")
	if err != nil || len(l.Screens) != 2 {
		t.Fatalf("Load(\"\") = %v, %v", l, err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")
	if err := os.WriteFile(path, DefaultTOML(), 0644); err != nil {
		t.Fatal(err)
	}
	l, err = Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error = %v", path, err)
	}
	if l.Screens[1].Elements[1].Text != "Label 3" {
		t.Errorf("text = %q", l.Screens[1].Elements[1].Text)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	data, err := Encode(Default())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	l, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Encode()) error = %v\n%s", err, data)
	}
	if l.Screens[0].Elements[0].Style.BackgroundColor != RGB(59, 130, 246) {
		t.Error("button fill lost in round trip")
	}
}
