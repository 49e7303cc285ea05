package icon

import (
	"image/color"
	"testing"
)

func TestNames(t *testing.T) {
	names := Names()
	want := []string{ChevronLeft, ChevronRight, Current}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestForTarget(t *testing.T) {
	if got := ForTarget(1, 0); got != ChevronLeft {
		t.Errorf("ForTarget(1, 0) = %q", got)
	}
	if got := ForTarget(0, 1); got != ChevronRight {
		t.Errorf("ForTarget(0, 1) = %q", got)
	}
	if got := ForTarget(1, 1); got != Current {
		t.Errorf("ForTarget(1, 1) = %q", got)
	}
}

func TestRasterize(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}

	for _, name := range Names() {
		img, err := Rasterize(name, 24, red)
		if err != nil {
			t.Fatalf("Rasterize(%q) error = %v", name, err)
		}
		if img.Bounds().Dx() != 24 || img.Bounds().Dy() != 24 {
			t.Errorf("%s bounds = %v", name, img.Bounds())
		}

		covered := 0
		for i := 0; i < len(img.Pix); i += 4 {
			if img.Pix[i+3] == 0 {
				continue
			}
			covered++
			if img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
				t.Fatalf("%s pixel not tinted red: %v", name, img.Pix[i:i+4])
			}
		}
		if covered == 0 {
			t.Errorf("%s rendered nothing", name)
		}
	}
}

func TestRasterizeErrors(t *testing.T) {
	if _, err := Rasterize("missing", 24, color.Black); err == nil {
		t.Error("Rasterize(missing) should fail")
	}
	if _, err := Rasterize(Current, 0, color.Black); err == nil {
		t.Error("Rasterize(size 0) should fail")
	}
}
