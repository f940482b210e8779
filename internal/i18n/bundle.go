package i18n

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/inkwell/internal/domain/catalog"
)

var spanishMonths = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"}

// Bundle looks up interface text for one language.
type Bundle struct {
	lang Language
}

// New returns a bundle for lang. Unsupported languages fall back to English.
func New(lang Language) *Bundle {
	if _, ok := messages[lang]; !ok {
		lang = English
	}
	return &Bundle{lang: lang}
}

// Language returns the bundle's language.
func (b *Bundle) Language() Language {
	return b.lang
}

// T returns the text for key, falling back to English and then to the key.
func (b *Bundle) T(key string) string {
	if text, ok := messages[b.lang][key]; ok {
		return text
	}
	if text, ok := messages[English][key]; ok {
		return text
	}
	return key
}

// Tf formats the text for key with args.
func (b *Bundle) Tf(key string, args ...interface{}) string {
	return fmt.Sprintf(b.T(key), args...)
}

// Category returns the localized category heading.
func (b *Bundle) Category(c catalog.Category) string {
	key := KeyCategoryPrefix + string(c)
	if text := b.T(key); text != key {
		return text
	}
	return cases.Title(language.English).String(strings.ReplaceAll(string(c), "_", " "))
}

// FormatDate renders t as a short localized date, e.g. "Mar 5, 2025" or
// "5 mar 2025".
func (b *Bundle) FormatDate(t time.Time) string {
	return FormatDate(b.lang, t)
}

// FormatDate renders t in the local time zone for lang.
func FormatDate(lang Language, t time.Time) string {
	t = t.Local()
	if lang == Spanish {
		return fmt.Sprintf("%d %s %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
	}
	return t.Format("Jan 2, 2006")
}
