package locale

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		reported string
		want     Language
	}{
		{"en-US", English},
		{"pt-BR", Portuguese},
		{"pt_BR.UTF-8", Portuguese},
		{"pt_PT@euro", Portuguese},
		{"es-419", Spanish},
		{"es_ES.UTF-8", Spanish},
		{"ES", Spanish},
		{"fr-FR", Default},
		{"de_DE.UTF-8", Default},
		{"C", Default},
		{"POSIX", Default},
		{"", Default},
		{"not a tag", Default},
	}
	for _, tt := range tests {
		t.Run(tt.reported, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.reported))
		})
	}
}

func TestReportedPrecedence(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "es_ES.UTF-8")
	assert.Equal(t, "es_ES.UTF-8", Reported())

	t.Setenv("LC_MESSAGES", "pt_BR.UTF-8")
	assert.Equal(t, "pt_BR.UTF-8", Reported())

	t.Setenv("LC_ALL", "en_US.UTF-8")
	assert.Equal(t, "en_US.UTF-8", Reported())
}

func TestSupported(t *testing.T) {
	assert.Equal(t, []Language{English, Portuguese, Spanish}, Supported())
}

func newTestLocalizer(t *testing.T, lang Language) *Localizer {
	t.Helper()
	bundle, err := NewBundle()
	require.NoError(t, err)
	return NewLocalizer(bundle, lang)
}

func TestFormatDate(t *testing.T) {
	day := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		lang Language
		want string
	}{
		{English, "Saturday, March 7, 2026"},
		{Portuguese, "Sábado, 7 de Março de 2026"},
		{Spanish, "Sábado, 7 de Marzo de 2026"},
	}
	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			assert.Equal(t, tt.want, newTestLocalizer(t, tt.lang).FormatDate(day))
		})
	}
}

func TestUnsupportedLocaleFormatsLikeDefault(t *testing.T) {
	day := time.Date(2026, 12, 24, 23, 59, 0, 0, time.UTC)
	fallback := newTestLocalizer(t, Detect("fr_FR.UTF-8"))
	def := newTestLocalizer(t, Default)

	assert.Equal(t, Default, fallback.Language())
	assert.Equal(t, def.FormatDate(day), fallback.FormatDate(day))
	assert.Equal(t, "Thursday, December 24, 2026", fallback.FormatDate(day))
}

func TestCatalogsAreComplete(t *testing.T) {
	ids := []string{
		"title", "south_american_time_zones", "overview_hint", "countries_in_zone",
		"key_select", "key_open", "key_back", "key_theme", "key_restore", "key_quit",
		"theme_light", "theme_dark", "city_brasilia", "city_stlouis", "date_format",
	}
	for m := 1; m <= 12; m++ {
		ids = append(ids, "month_"+strconv.Itoa(m))
	}
	for d := 0; d < 7; d++ {
		ids = append(ids, "weekday_"+strconv.Itoa(d))
	}

	for _, lang := range Supported() {
		l := newTestLocalizer(t, lang)
		for _, id := range ids {
			assert.NotEqual(t, id, l.T(id), "%s missing %s", lang, id)
		}
	}
}

func TestCountry(t *testing.T) {
	assert.Equal(t, "Brasil", newTestLocalizer(t, Portuguese).Country("BR", "Brazil"))
	assert.Equal(t, "Islas Malvinas", newTestLocalizer(t, Spanish).Country("FK", "Falkland Islands"))
	assert.Equal(t, "Brazil", newTestLocalizer(t, English).Country("BR", "Brazil"))
	assert.Equal(t, "Atlantis", newTestLocalizer(t, English).Country("XX", "Atlantis"))
}

func TestCity(t *testing.T) {
	assert.Equal(t, "BRASILIA", newTestLocalizer(t, Spanish).City("brasilia", "BRASÍLIA"))
	assert.Equal(t, "BRASÍLIA", newTestLocalizer(t, Portuguese).City("brasilia", "x"))
	assert.Equal(t, "NOWHERE", newTestLocalizer(t, English).City("nowhere", "NOWHERE"))
}
