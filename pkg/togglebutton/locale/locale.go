// Package locale translates the user-facing strings of the toggle button demo.
// Translations are embedded TOML message files; English is the fallback.
package locale

import (
	"embed"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	MessageTitle            = "Title"
	MessageHelp             = "Help"
	MessageOptionProjects   = "OptionProjects"
	MessageOptionUpcoming   = "OptionUpcoming"
	MessageSelectionChanged = "SelectionChanged"
)

//go:embed translations/*.toml
var translations embed.FS

// Translator resolves message IDs for a preferred language.
type Translator struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

// New loads the embedded translations and prefers langs in order.
// An empty or absent language selects English.
func New(langs ...string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := translations.ReadDir("translations")
	if err != nil {
		return nil, fmt.Errorf("read translations: %w", err)
	}
	for _, e := range entries {
		name := path.Join("translations", e.Name())
		data, err := translations.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}

	preferred := make([]string, 0, len(langs))
	for _, l := range langs {
		if l == "" {
			continue
		}
		if _, err := language.Parse(l); err != nil {
			return nil, fmt.Errorf("locale %q: %w", l, err)
		}
		preferred = append(preferred, l)
	}

	return &Translator{
		localizer: i18n.NewLocalizer(bundle, preferred...),
		bundle:    bundle,
	}, nil
}

// Languages lists the languages that have translations.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}

// Text returns the translation of id, or id itself if no language has it.
func (t *Translator) Text(id string) string {
	return t.TextOr(id, id)
}

// TextOr returns the translation of id, or fallback if no language has it.
func (t *Translator) TextOr(id, fallback string) string {
	// Localize returns the default language's text alongside an error when
	// only the preferred language lacks the message.
	s, _ := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if s == "" {
		return fallback
	}
	return s
}
