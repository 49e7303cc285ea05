// Package i18n resolves user-visible carousel strings.
//
// Layout text is literal by default. An element with a text_id is looked up
// in the message bundle and falls back to its literal text when the id is
// unknown. Bundled locales live in locales/active.<lang>.toml; more can be
// added at runtime with LoadFile.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// DefaultLanguage is used for messages missing from the requested locale.
var DefaultLanguage = language.English

// Message ids shipped with the bundled locales.
const (
	MsgNavigateTo  = "NavigateTo"
	MsgScreenName  = "ScreenName"
	MsgWindowTitle = "WindowTitle"
)

// Translator localizes messages for one preferred language.
type Translator struct {
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
	tag       language.Tag
}

// New creates a Translator for locale (for example "de", "es-MX"). An empty
// locale selects DefaultLanguage.
func New(locale string) (*Translator, error) {
	tag := DefaultLanguage
	if locale != "" {
		parsed, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("i18n: parse locale %q: %w", locale, err)
		}
		tag = parsed
	}

	bundle := goi18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: read bundled locales: %w", err)
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, path.Join("locales", entry.Name())); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", entry.Name(), err)
		}
	}

	t := &Translator{bundle: bundle, tag: tag}
	t.localizer = goi18n.NewLocalizer(bundle, tag.String(), DefaultLanguage.String())
	return t, nil
}

// LoadFile adds messages from a TOML message file named like
// "active.<lang>.toml".
func (t *Translator) LoadFile(filename string) error {
	if _, err := t.bundle.LoadMessageFile(filename); err != nil {
		return fmt.Errorf("i18n: load %s: %w", filename, err)
	}
	return nil
}

// Language returns the requested language.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// Languages returns every language with bundled or loaded messages.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}

// Localize renders message id with data. If the id is unknown in every
// language, fallback is returned.
func (t *Translator) Localize(id string, data map[string]any, fallback string) string {
	if id == "" {
		return fallback
	}

	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil || strings.TrimSpace(msg) == "" {
		return fallback
	}
	return msg
}

// Text resolves an element's text: the message for id if there is one,
// otherwise the literal.
func (t *Translator) Text(id, literal string) string {
	return t.Localize(id, nil, literal)
}

// NavigateTo is the caption of a window-level navigation button.
func (t *Translator) NavigateTo(id, screenName string) string {
	if id == "" {
		id = MsgNavigateTo
	}
	return t.Localize(id, map[string]any{"Name": screenName}, "Go to "+screenName)
}

// ScreenName is the fallback name of the screen at index (numbered from 1).
func (t *Translator) ScreenName(index int) string {
	return t.Localize(MsgScreenName, map[string]any{"Number": index + 1}, fmt.Sprintf("Screen %d", index+1))
}
