package clock

import (
	"fmt"
	"strconv"
	"time"

	"github.com/philtim/zoneclock/locale"
	"github.com/philtim/zoneclock/zones"
	"github.com/pkg/errors"
)

// Now returns the current instant. Tests replace it to pin time.
var Now = time.Now

// Clock is a live clock for one zone entry
type Clock struct {
	Entry    zones.Entry
	Location *time.Location
}

// Parts is a wall-clock time split into zero-padded 24-hour fields
type Parts struct {
	Hours   string
	Minutes string
	Seconds string
}

// Reading is what a clock shows at one instant
type Reading struct {
	Parts
	Date string
}

// New creates a clock for entry. An unknown zone id is a table error.
func New(entry zones.Entry) (*Clock, error) {
	loc, err := time.LoadLocation(entry.ZoneID)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", entry.ZoneID)
	}

	return &Clock{
		Entry:    entry,
		Location: loc,
	}, nil
}

// NewAll creates clocks for every entry, keeping order
func NewAll(entries []zones.Entry) ([]*Clock, error) {
	clocks := make([]*Clock, 0, len(entries))
	for _, e := range entries {
		clk, err := New(e)
		if err != nil {
			return nil, err
		}
		clocks = append(clocks, clk)
	}
	return clocks, nil
}

// In returns t in the clock's zone
func (c *Clock) In(t time.Time) time.Time {
	return t.In(c.Location)
}

// Parts returns hours, minutes and seconds of t in 24-hour form
func (c *Clock) Parts(t time.Time) Parts {
	local := c.In(t)
	return Parts{
		Hours:   local.Format("15"),
		Minutes: local.Format("04"),
		Seconds: local.Format("05"),
	}
}

// Reading returns the time parts and the localized long date of t
func (c *Clock) Reading(t time.Time, l *locale.Localizer) Reading {
	return Reading{
		Parts: c.Parts(t),
		Date:  l.FormatDate(c.In(t)),
	}
}

// DisplayKey returns the "HH:MM AM/PM" text used to group clocks
func (c *Clock) DisplayKey(t time.Time) string {
	return c.In(t).Format("03:04 PM")
}

// UTCOffset returns the zone's offset from UTC at t in seconds
func (c *Clock) UTCOffset(t time.Time) int {
	_, offset := c.In(t).Zone()
	return offset
}

// FormatUTCOffset returns the UTC offset at t in UTC±HH:MM format
func (c *Clock) FormatUTCOffset(t time.Time) string {
	offset := c.UTCOffset(t)

	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}

	hours := offset / 3600
	minutes := (offset % 3600) / 60

	return fmt.Sprintf("UTC%s%02d:%02d", sign, hours, minutes)
}

// ParseDisplayKey converts an "HH:MM AM/PM" key back to minutes since
// midnight (0-1439). 12 AM is midnight and 12 PM is noon.
func ParseDisplayKey(key string) (int, error) {
	if len(key) != len("03:04 PM") || key[2] != ':' || key[5] != ' ' {
		return 0, errors.Errorf("malformed display time %q", key)
	}
	hours, err := strconv.Atoi(key[0:2])
	if err != nil || hours < 1 || hours > 12 {
		return 0, errors.Errorf("malformed hour in %q", key)
	}
	minutes, err := strconv.Atoi(key[3:5])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, errors.Errorf("malformed minute in %q", key)
	}

	hours %= 12
	switch key[6:] {
	case "AM":
	case "PM":
		hours += 12
	default:
		return 0, errors.Errorf("malformed meridiem in %q", key)
	}
	return hours*60 + minutes, nil
}
