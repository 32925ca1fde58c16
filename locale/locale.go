// Package locale picks the working language and renders localized text.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the supported UI languages
type Language string

const (
	English    Language = "en"
	Portuguese Language = "pt"
	Spanish    Language = "es"

	// Default is used whenever the reported locale is not supported
	Default = English
)

var supported = []Language{English, Portuguese, Spanish}

// Supported returns the supported languages, default first
func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// Tag returns the BCP 47 tag of the language
func (l Language) Tag() language.Tag {
	return language.Make(string(l))
}

// Reported returns the locale the environment reports, following POSIX
// precedence: LC_ALL, then LC_MESSAGES, then LANG.
func Reported() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

// Detect derives the working language from a reported locale such as
// "pt_BR.UTF-8" or "es-419". Only the primary subtag is considered and
// anything unsupported or unparsable yields Default.
func Detect(reported string) Language {
	tag := reported
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if tag == "" {
		return Default
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return Default
	}
	base, conf := parsed.Base()
	if conf == language.No {
		return Default
	}
	for _, l := range supported {
		if base.String() == string(l) {
			return l
		}
	}
	return Default
}
