// Package i18n loads the translation bundles the contact form renders its
// messages from. Bundles are embedded JSON catalogs keyed by dotted message
// ids; Init fails fast when a locale is missing a key the form depends on.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

//go:embed locales
var localesFS embed.FS

// SupportedLocales lists the site locales, default first.
var SupportedLocales = []string{"tr", "en"}

// requiredKeys are the message ids the form cannot render without. Init
// refuses to start with a bundle that is missing any of them, so a broken
// catalog surfaces at boot instead of as empty strings next to a field.
var requiredKeys = []string{
	"form.input.name.required",
	"form.input.surname.required",
	"form.input.email.required",
	"form.input.email.invalid",
	"form.input.phone.invalid",
	"form.input.country.required",
	"form.input.city.required",
	"form.input.residenceType.required",
	"form.input.howDidYouHearAboutUs.required",
	"form.input.consent.required",
	"form.input.consentElectronicMessage.required",
	"form.message.success",
	"form.message.error",
	"form.loading",
}

// Message is a single entry of a locale catalog.
type Message struct {
	ID          string `json:"id"`
	Translation string `json:"translation"`
}

// MessageFile is the on-disk shape of one locale catalog.
type MessageFile struct {
	Language string    `json:"language"`
	Messages []Message `json:"messages"`
}

// Catalog holds the loaded translations for every supported locale.
type Catalog struct {
	mu           sync.RWMutex
	translations map[string]map[string]string
	matcher      language.Matcher
	supported    []language.Tag
	defaultLang  string
}

var catalog *Catalog

// Init loads every supported locale from the embedded filesystem and
// validates the required form keys. Must be called once at startup.
func Init() error {
	c := &Catalog{
		translations: make(map[string]map[string]string),
		defaultLang:  SupportedLocales[0],
	}

	tags := make([]language.Tag, 0, len(SupportedLocales))
	for _, lang := range SupportedLocales {
		tags = append(tags, language.MustParse(lang))
	}
	c.supported = tags
	c.matcher = language.NewMatcher(tags)

	for _, lang := range SupportedLocales {
		if err := c.loadLocale(lang); err != nil {
			return err
		}
	}

	for _, lang := range SupportedLocales {
		for _, key := range requiredKeys {
			if _, ok := c.translations[lang][key]; !ok {
				return fmt.Errorf("i18n: locale %s is missing required key %q", lang, key)
			}
		}
	}

	catalog = c
	return nil
}

func (c *Catalog) loadLocale(lang string) error {
	path := fmt.Sprintf("locales/%s/messages.json", lang)
	data, err := localesFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("i18n: read %s: %w", path, err)
	}

	var msgFile MessageFile
	if err := json.Unmarshal(data, &msgFile); err != nil {
		return fmt.Errorf("i18n: parse %s: %w", path, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.translations[lang] = make(map[string]string, len(msgFile.Messages))
	for _, msg := range msgFile.Messages {
		c.translations[lang][msg.ID] = msg.Translation
	}
	return nil
}

// T translates a message id for the given locale, falling back to the default
// locale and finally to the id itself. Optional args are applied with Sprintf.
func T(lang, key string, args ...any) string {
	if catalog == nil {
		return key
	}

	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	translations, ok := catalog.translations[lang]
	if !ok {
		translations = catalog.translations[catalog.defaultLang]
	}

	translation, ok := translations[key]
	if !ok && lang != catalog.defaultLang {
		translation, ok = catalog.translations[catalog.defaultLang][key]
	}
	if !ok {
		return key
	}

	if len(args) > 0 {
		return fmt.Sprintf(translation, args...)
	}
	return translation
}

// MatchLocale resolves an Accept-Language header or bare language code to the
// closest supported locale.
func MatchLocale(acceptLang string) string {
	if catalog == nil {
		return SupportedLocales[0]
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		tag, err := language.Parse(acceptLang)
		if err != nil {
			return catalog.defaultLang
		}
		tags = []language.Tag{tag}
	}

	_, idx, _ := catalog.matcher.Match(tags...)
	if idx >= 0 && idx < len(catalog.supported) {
		return catalog.supported[idx].String()
	}
	return catalog.defaultLang
}

// IsSupported reports whether a locale code is one of the site locales.
func IsSupported(lang string) bool {
	lang = strings.ToLower(lang)
	for _, supported := range SupportedLocales {
		if supported == lang {
			return true
		}
	}
	return false
}
