package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var catalogs embed.FS

// NewBundle loads the embedded message catalogs
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	files, err := fs.Glob(catalogs, "locales/*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list catalogs: %w", err)
	}
	for _, name := range files {
		data, err := catalogs.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, path.Base(name)); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", name, err)
		}
	}
	return bundle, nil
}

// Localizer renders text and dates for one language
type Localizer struct {
	lang      Language
	localizer *i18n.Localizer
}

// NewLocalizer creates a localizer for lang backed by bundle
func NewLocalizer(bundle *i18n.Bundle, lang Language) *Localizer {
	return &Localizer{
		lang:      lang,
		localizer: i18n.NewLocalizer(bundle, lang.Tag().String(), Default.Tag().String()),
	}
}

// Language returns the language the localizer renders
func (l *Localizer) Language() Language {
	return l.lang
}

// T returns the message for id, or id itself when no catalog has it
func (l *Localizer) T(id string) string {
	return l.localize(id, nil, id)
}

// Country returns the localized name of a country by its two-letter code
func (l *Localizer) Country(code, fallback string) string {
	return l.localize("country_"+code, nil, fallback)
}

// City returns the localized label of a featured city
func (l *Localizer) City(id, fallback string) string {
	return l.localize("city_"+id, nil, fallback)
}

// FormatDate renders the long form date (weekday, month name, day, year)
// of t using the language's template. t must already be in the zone to
// display.
func (l *Localizer) FormatDate(t time.Time) string {
	data := map[string]any{
		"Weekday": l.T("weekday_" + strconv.Itoa(int(t.Weekday()))),
		"Month":   l.T("month_" + strconv.Itoa(int(t.Month()))),
		"Day":     t.Day(),
		"Year":    t.Year(),
	}
	return l.localize("date_format", data, t.Format("Monday, January 2, 2006"))
}

func (l *Localizer) localize(id string, data map[string]any, fallback string) string {
	// A default language translation comes back alongside a
	// MessageNotFoundErr, so only an empty result means "missing".
	msg, _ := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if msg == "" {
		return fallback
	}
	return msg
}
