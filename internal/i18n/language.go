// Package i18n provides the English and Spanish interface strings, language
// detection, and localized date formatting.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/inkwell/internal/domain/catalog"
)

// Language is a supported interface language.
type Language = catalog.Language

const (
	English = catalog.LanguageEnglish
	Spanish = catalog.LanguageSpanish

	// System asks for the language to be detected from the environment.
	System = "system"
)

var (
	supported = []Language{English, Spanish}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.Spanish})
)

// Supported returns the interface languages in menu order.
func Supported() []Language {
	return append([]Language(nil), supported...)
}

// Parse accepts an exact language code.
func Parse(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, nil
	case Spanish:
		return Spanish, nil
	default:
		return "", fmt.Errorf("unsupported language %q (want en or es)", s)
	}
}

// Match maps any BCP 47 tag, such as "es-MX" or "en_GB", to the closest
// supported language. Unknown or malformed tags yield English.
func Match(tag string) Language {
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if tag == "" {
		return English
	}
	t, err := language.Parse(tag)
	if err != nil {
		return English
	}
	_, index, confidence := matcher.Match(t)
	if confidence == language.No {
		return English
	}
	return supported[index]
}

// Detect reads the POSIX locale variables in priority order.
func Detect(getenv func(string) string) Language {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := getenv(key)
		if value == "" {
			continue
		}
		if i := strings.IndexAny(value, ".@"); i >= 0 {
			value = value[:i]
		}
		if value == "C" || value == "POSIX" {
			return English
		}
		return Match(value)
	}
	return English
}

// Resolve turns a configured language ("system", "en", "es") into a
// concrete language.
func Resolve(setting string, getenv func(string) string) Language {
	setting = strings.TrimSpace(setting)
	if setting == "" || strings.EqualFold(setting, System) {
		return Detect(getenv)
	}
	if lang, err := Parse(setting); err == nil {
		return lang
	}
	return Match(setting)
}

// Next returns the language after lang in menu order, wrapping around.
func Next(lang Language) Language {
	for i, l := range supported {
		if l == lang {
			return supported[(i+1)%len(supported)]
		}
	}
	return English
}
