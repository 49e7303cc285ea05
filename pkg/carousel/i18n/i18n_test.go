package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
)

func TestNavigateTo(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{locale: "", want: "Go to Screen 1"},
		{locale: "en", want: "Go to Screen 1"},
		{locale: "de", want: "Zu Screen 1"},
		{locale: "es-MX", want: "Ir a Screen 1"},
		{locale: "fr", want: "Go to Screen 1"},
	}

	for _, tt := range tests {
		tr, err := New(tt.locale)
		if err != nil {
			t.Fatalf("New(%q) error = %v", tt.locale, err)
		}
		if got := tr.NavigateTo("", "Screen 1"); got != tt.want {
			t.Errorf("NavigateTo() in %q = %q, want %q", tt.locale, got, tt.want)
		}
	}
}

func TestTextFallsBackToLiteral(t *testing.T) {
	tr, err := New("en")
	if err != nil {
		t.Fatal(err)
	}

	if got := tr.Text("", "Button 0"); got != "Button 0" {
		t.Errorf("Text(no id) = %q", got)
	}
	if got := tr.Text("NoSuchMessage", "Label 1"); got != "Label 1" {
		t.Errorf("Text(unknown id) = %q", got)
	}
	if got := tr.Text(MsgWindowTitle, "x"); got != "Screen Switcher" {
		t.Errorf("Text(WindowTitle) = %q", got)
	}
}

func TestScreenName(t *testing.T) {
	tr, err := New("de")
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.ScreenName(1); got != "Bildschirm 2" {
		t.Errorf("ScreenName(1) = %q", got)
	}
}

func TestNewRejectsBadLocale(t *testing.T) {
	if _, err := New("not a locale!"); err == nil {
		t.Error("New() with garbage locale should fail")
	}
}

func TestLoadFile(t *testing.T) {
	tr, err := New("fr")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "active.fr.toml")
	src := "[NavigateTo]\nother = \"Aller à {{.Name}}\"\n"
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	if err := tr.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if got := tr.NavigateTo("", "Écran 1"); got != "Aller à Écran 1" {
		t.Errorf("NavigateTo() = %q", got)
	}

	found := false
	for _, tag := range tr.Languages() {
		if tag == language.French {
			found = true
		}
	}
	if !found {
		t.Errorf("Languages() = %v, want French included", tr.Languages())
	}
}
