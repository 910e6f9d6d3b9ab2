// Package locale provides the localized strings for wizard chrome. The
// navigation defaults ("Back", "Next", "Finish") ship embedded in English;
// other languages come from message files referenced in config.
package locale

import (
	"fmt"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

func init() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)
	localizer = i18n.NewLocalizer(bundle, language.English.String())
}

// SetLanguage switches the active language. Invalid tags are rejected;
// messages missing in the requested language fall back to English.
func SetLanguage(lang string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("parsing language %q: %w", lang, err)
	}

	mu.Lock()
	defer mu.Unlock()
	localizer = i18n.NewLocalizer(bundle, tag.String(), language.English.String())
	return nil
}

// LoadMessageFile adds translations from a yaml message file, e.g.
// wizard.de.yml. The file's language is taken from its name.
func LoadMessageFile(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if _, err := bundle.LoadMessageFile(path); err != nil {
		return fmt.Errorf("loading message file %s: %w", path, err)
	}
	return nil
}

func lookup(id, fallback string) string {
	mu.RLock()
	loc := localizer
	mu.RUnlock()

	msg, err := loc.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if err != nil {
		return fallback
	}
	return msg
}

// Back is the default caption of the back control.
func Back() string { return lookup("wizard.back", "Back") }

// Next is the default caption of the forward control before the last
// enabled step.
func Next() string { return lookup("wizard.next", "Next") }

// Finish is the default caption of the forward control on the last
// enabled step.
func Finish() string { return lookup("wizard.finish", "Finish") }

// Cancel is the caption used by hint bars and confirmation prompts.
func Cancel() string { return lookup("wizard.cancel", "Cancel") }
