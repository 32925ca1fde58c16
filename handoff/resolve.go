package handoff

import (
	"strings"
	"time"

	"github.com/philtim/zoneclock/zones"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxSplitCandidates bounds the separator combinations Derive tries
const maxSplitCandidates = 1 << 6

// particles stay lower case inside a city name, as in Port_of_Spain or
// Port-au-Prince
var particles = map[string]bool{
	"of": true, "es": true, "au": true, "de": true, "du": true,
}

// Resolve picks the group to show for a route segment: the handed-off
// payload when there is one, then the predefined mapping, then a group
// derived from the segment alone.
func Resolve(segment string, p Payload, ok bool) Payload {
	if ok {
		return p
	}
	if entries, found := zones.Mapping(segment); found {
		return Payload{ZoneID: entries[0].ZoneID, Countries: entries}
	}
	return Derive(segment)
}

// Derive rebuilds a single-entry group from a route segment. The segment
// is looked up in the host's zone names first; without a match,
// underscores are read as path separators and readings that keep some
// underscores inside city names are tried, so "america_sao_paulo" yields
// "America/Sao_Paulo".
func Derive(segment string) Payload {
	return derive(segment, systemZones())
}

func derive(segment string, idx zoneIndex) Payload {
	segment = strings.ToLower(strings.Trim(segment, "_/ "))
	zoneID := strings.ReplaceAll(segment, "_", "/")
	if found, ok := idx.lookup(segment); ok {
		zoneID = found
	} else if found, ok := findZone(segment); ok {
		zoneID = found
	}

	parts := strings.Split(zoneID, "/")
	country := strings.ReplaceAll(parts[len(parts)-1], "_", " ")
	code := strings.ToUpper(country)
	if len(code) > 2 {
		code = code[:2]
	}

	return Payload{
		ZoneID:    zoneID,
		Countries: []zones.Entry{{Country: country, Code: code, ZoneID: zoneID}},
	}
}

func findZone(segment string) (string, bool) {
	words := strings.Split(segment, "_")
	gaps := len(words) - 1
	if gaps == 0 || 1<<gaps > maxSplitCandidates {
		return "", false
	}
	// Bit i set means gap i is a path separator; all separators come first.
	for mask := 1<<gaps - 1; mask > 0; mask-- {
		var b strings.Builder
		b.WriteString(titleWord(words[0], true))
		for i := 0; i < gaps; i++ {
			sep := mask&(1<<i) != 0
			if sep {
				b.WriteByte('/')
			} else {
				b.WriteByte('_')
			}
			b.WriteString(titleWord(words[i+1], sep))
		}
		if _, err := time.LoadLocation(b.String()); err == nil {
			return b.String(), true
		}
	}
	return "", false
}

// titleWord capitalizes the hyphen-separated parts of w. Particles keep
// lower case unless they open a path element.
func titleWord(w string, opensElement bool) string {
	title := cases.Title(language.Und)
	parts := strings.Split(w, "-")
	for i, p := range parts {
		if particles[p] && (i > 0 || !opensElement) {
			continue
		}
		parts[i] = title.String(p)
	}
	return strings.Join(parts, "-")
}
