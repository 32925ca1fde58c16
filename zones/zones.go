package zones

import (
	"strings"
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host database

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Entry is a country paired with the zone its clock displays
type Entry struct {
	Country string `json:"country" validate:"required"`
	Code    string `json:"code" validate:"required,len=2,alpha,uppercase"`
	ZoneID  string `json:"timezone" validate:"required"`
}

var southAmerica = []Entry{
	argentina, bolivia, brazil, chile, colombia, ecuador, falklands,
	frenchGuiana, guyana, paraguay, peru, suriname, uruguay, venezuela,
}

// Featured clock identifiers, also used as message ids for their labels
const (
	Brasilia = "brasilia"
	StLouis  = "stlouis"
)

// City is one of the fixed fullscreen clocks
type City struct {
	ID     string
	Name   string
	ZoneID string
}

var featured = []City{
	{ID: Brasilia, Name: "Brasília", ZoneID: "America/Sao_Paulo"},
	{ID: StLouis, Name: "St. Louis", ZoneID: "America/Chicago"},
}

// SouthAmerica returns a copy of the grouped overview table in display order
func SouthAmerica() []Entry {
	out := make([]Entry, len(southAmerica))
	copy(out, southAmerica)
	return out
}

// Featured returns the fixed fullscreen clocks
func Featured() []City {
	out := make([]City, len(featured))
	copy(out, featured)
	return out
}

// FeaturedCity looks up a fixed clock by id
func FeaturedCity(id string) (City, bool) {
	for _, c := range featured {
		if c.ID == id {
			return c, true
		}
	}
	return City{}, false
}

// Segment renders a zone id the way it appears in a route path
func Segment(zoneID string) string {
	return strings.ToLower(strings.ReplaceAll(zoneID, "/", "_"))
}

var validate = validator.New()

// Validate checks every entry's fields and that its zone can be loaded
func Validate(entries []Entry) error {
	if len(entries) == 0 {
		return errors.New("zone table is empty")
	}
	seen := make(map[string]bool)
	for i, e := range entries {
		if err := validate.Struct(e); err != nil {
			return errors.Wrapf(err, "zone entry %d (%s)", i, e.Country)
		}
		if _, err := time.LoadLocation(e.ZoneID); err != nil {
			return errors.Wrapf(err, "zone entry %d (%s)", i, e.Country)
		}
		if seen[e.Code] {
			return errors.Errorf("zone entry %d: duplicate country code %s", i, e.Code)
		}
		seen[e.Code] = true
	}
	return nil
}
