package locale

import (
	"embed"
	"fmt"
	"log"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messagesFS embed.FS

// DefaultLanguage is the fallback locale every lookup can resolve against
const DefaultLanguage = "en"

// Message catalog keys referenced by the shell assembly
const (
	KeyAppTitle          = "app.title"
	KeyAppFooter         = "app.footer"
	KeyAppBanner         = "app.banner"
	KeyDrawerAbout       = "app.drawer_item.about"
	KeyDrawerDisclaimer  = "app.drawer_item.disclaimer"
	KeyDrawerSourceCode  = "app.drawer_item.code"
	KeyDrawerWiki        = "app.drawer_item.wiki"
	KeyDrawerBugReport   = "app.drawer_item.bug"
	KeyTileAboutTitle    = "app.tile.about"
	KeyTileDisclaimer    = "app.tile.disclaimer"
	KeyMenuFile          = "app.menu.file"
	KeyMenuLanguage      = "app.menu.language"
	KeyMenuSettings      = "app.menu.settings"
	KeySettingsSaved     = "app.settings.saved"
	KeySettingsLanguage  = "app.settings.language"
	KeySettingsTitle     = "app.settings.title"
	KeySettingsSave      = "app.settings.save"
	KeySettingsCancel    = "app.settings.cancel"
	KeyBannerDismiss     = "app.banner_dismiss"
	KeyAboutMissingBody  = "app.tile.about_missing"
)

// Translator resolves dotted message keys against the active language with
// an English fallback. It is immutable after load except for the active
// language, which SetLanguage swaps atomically for the single UI goroutine.
type Translator struct {
	bundle          *i18n.Bundle
	localizer       *i18n.Localizer
	currentLanguage string
}

// NewTranslator loads the embedded message files and returns a catalog
// localizing to lang. Unknown languages fall back to English.
func NewTranslator(lang string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := messagesFS.ReadDir("messages")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded messages: %w", err)
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(messagesFS, "messages/"+entry.Name()); err != nil {
			return nil, fmt.Errorf("failed to load message file %s: %w", entry.Name(), err)
		}
	}

	tr := &Translator{bundle: bundle}
	tr.SetLanguage(lang)
	return tr, nil
}

// SetLanguage switches the active language. "system" and unknown tags
// resolve to the default language through the bundle's matcher.
func (tr *Translator) SetLanguage(lang string) {
	if lang == "" || lang == "system" {
		lang = DefaultLanguage
	}

	tr.currentLanguage = lang
	tr.localizer = i18n.NewLocalizer(tr.bundle, lang, DefaultLanguage)
}

// CurrentLanguage returns the language code lookups resolve against
func (tr *Translator) CurrentLanguage() string {
	return tr.currentLanguage
}

// AvailableLanguages returns the shipped locales with their display names
func (tr *Translator) AvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"fr": "Français",
	}
}

// T resolves key to a localized string. A key missing from every locale
// resolves to the key itself so broken references stay visible on screen
// instead of failing the assembly.
func (tr *Translator) T(key string) string {
	return tr.TData(key, nil)
}

// TData resolves a templated key, substituting the named arguments in data
// (e.g. "Year" for the footer).
func (tr *Translator) TData(key string, data map[string]interface{}) string {
	msg, err := tr.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("message key %q not resolved: %v", key, err)
		return key
	}
	return msg
}
